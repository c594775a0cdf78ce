package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/planner-backend/internal/auth"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
)

func (h *Handler) listFeatures(c *gin.Context) {
	appID, ok := queryID(c, "appId", applicationRes)
	if !ok {
		return
	}

	features, err := h.features.List(c.Request.Context(), auth.OwnerID(c), appID)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": features})
}

// bulkCreateFeatures drafts features with the breakdown generator; all or nothing.
func (h *Handler) bulkCreateFeatures(c *gin.Context) {
	var p domain.BulkFeaturePayload
	if !bindJSON(c, &p) {
		return
	}

	features, err := h.features.BulkCreate(c.Request.Context(), auth.OwnerID(c), p)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"features": features})
}

func (h *Handler) getFeature(c *gin.Context) {
	id, ok := queryID(c, "featureId", featureRes)
	if !ok {
		return
	}

	f, err := h.features.Get(c.Request.Context(), auth.OwnerID(c), id)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": f})
}

func (h *Handler) createFeature(c *gin.Context) {
	var p domain.FeaturePayload
	if !bindJSON(c, &p) {
		return
	}

	f, err := h.features.Create(c.Request.Context(), auth.OwnerID(c), p)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": f})
}

func (h *Handler) updateFeature(c *gin.Context) {
	id, ok := queryID(c, "featureId", featureRes)
	if !ok {
		return
	}
	var p domain.FeaturePayload
	if !bindJSON(c, &p) {
		return
	}

	f, err := h.features.Update(c.Request.Context(), auth.OwnerID(c), id, p)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": f})
}

func (h *Handler) deleteFeature(c *gin.Context) {
	id, ok := queryID(c, "featureId", featureRes)
	if !ok {
		return
	}

	f, err := h.features.Delete(c.Request.Context(), auth.OwnerID(c), id)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": f})
}
