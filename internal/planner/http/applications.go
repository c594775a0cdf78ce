package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/planner-backend/internal/auth"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/repository"
)

func (h *Handler) listApplications(c *gin.Context) {
	var f repository.ApplicationFilter

	if id := strings.TrimSpace(c.Query("id")); id != "" {
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
			return
		}
		f.ID = id
	}
	if st := strings.TrimSpace(c.Query("enrichment")); st != "" {
		if !domain.IsEnrichmentStatus(st) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enrichment status"})
			return
		}
		f.EnrichmentStatus = st
	}

	apps, err := h.apps.List(c.Request.Context(), auth.OwnerID(c), f)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": apps})
}

func (h *Handler) createApplication(c *gin.Context) {
	var p domain.ApplicationPayload
	if !bindJSON(c, &p) {
		return
	}

	app, features, err := h.apps.Create(c.Request.Context(), auth.OwnerID(c), p)
	if err != nil {
		var extra gin.H
		if app != nil {
			extra = gin.H{"data": app, "features": []domain.Feature{}, "message": "App created but failed to generate features..."}
		}
		writeError(c, err, extra)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": app, "features": features})
}

func (h *Handler) getApplication(c *gin.Context) {
	id, ok := queryID(c, "appId", applicationRes)
	if !ok {
		return
	}

	app, err := h.apps.Get(c.Request.Context(), auth.OwnerID(c), id)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": app})
}

func (h *Handler) updateApplication(c *gin.Context) {
	id, ok := queryID(c, "appId", applicationRes)
	if !ok {
		return
	}
	var p domain.ApplicationPayload
	if !bindJSON(c, &p) {
		return
	}

	app, err := h.apps.Update(c.Request.Context(), auth.OwnerID(c), id, p)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": app})
}

func (h *Handler) deleteApplication(c *gin.Context) {
	id, ok := queryID(c, "appId", applicationRes)
	if !ok {
		return
	}

	app, err := h.apps.Delete(c.Request.Context(), auth.OwnerID(c), id)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": app})
}
