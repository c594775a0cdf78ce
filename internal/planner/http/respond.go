package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/planner-backend/internal/breakdown"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/storage/postgres"
)

// resource names a kind of record in client-facing messages.
type resource struct {
	title string // "Application"
	lower string // "application"
}

var (
	applicationRes = resource{"Application", "application"}
	featureRes     = resource{"Feature", "feature"}
	storyRes       = resource{"Story", "story"}
)

// queryID reads a required uuid query parameter, writing a 400 when it is
// missing, the literal "undefined", or malformed.
func queryID(c *gin.Context, param string, r resource) (string, bool) {
	v := strings.TrimSpace(c.Query(param))
	if v == "" || v == "undefined" {
		c.JSON(http.StatusBadRequest, gin.H{"error": r.title + " ID is required"})
		return "", false
	}
	if _, err := uuid.Parse(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + r.lower + " ID"})
		return "", false
	}
	return v, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return false
	}
	return true
}

// writeError maps service errors onto the response envelope. extra is merged
// into the body, e.g. the committed parent of a failed enrichment.
func writeError(c *gin.Context, err error, extra gin.H) {
	_ = c.Error(err)

	var (
		verr *domain.ValidationError
		gerr *domain.GenerationError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format", "message": verr.Error()})
	case errors.Is(err, domain.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, domain.ErrFeatureNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Feature not found"})
	case errors.Is(err, domain.ErrStoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
	case errors.As(err, &gerr):
		status := http.StatusInternalServerError
		if errors.Is(err, breakdown.ErrRateLimited) {
			status = http.StatusTooManyRequests
		}
		body := gin.H{"error": err.Error(), "message": "Failed to generate features"}
		if gerr.Committed {
			body["warning"] = true
		}
		for k, v := range extra {
			body[k] = v
		}
		c.JSON(status, body)
	case postgres.IsValueTooLong(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format", "message": "A field exceeds its maximum length."})
	case postgres.IsInvalidText(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data format", "message": "A field has an invalid format."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
