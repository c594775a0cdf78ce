package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/planner-backend/internal/auth"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
)

func (h *Handler) listStories(c *gin.Context) {
	featureID, ok := queryID(c, "featureId", featureRes)
	if !ok {
		return
	}

	stories, err := h.stories.List(c.Request.Context(), auth.OwnerID(c), featureID)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stories})
}

func (h *Handler) getStory(c *gin.Context) {
	id, ok := queryID(c, "storyId", storyRes)
	if !ok {
		return
	}

	s, err := h.stories.Get(c.Request.Context(), auth.OwnerID(c), id)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s})
}

func (h *Handler) createStory(c *gin.Context) {
	var p domain.UserStoryPayload
	if !bindJSON(c, &p) {
		return
	}

	s, err := h.stories.Create(c.Request.Context(), auth.OwnerID(c), p)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s})
}

func (h *Handler) updateStory(c *gin.Context) {
	id, ok := queryID(c, "storyId", storyRes)
	if !ok {
		return
	}
	var p domain.UserStoryPayload
	if !bindJSON(c, &p) {
		return
	}

	s, err := h.stories.Update(c.Request.Context(), auth.OwnerID(c), id, p)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s})
}

func (h *Handler) deleteStory(c *gin.Context) {
	id, ok := queryID(c, "storyId", storyRes)
	if !ok {
		return
	}

	s, err := h.stories.Delete(c.Request.Context(), auth.OwnerID(c), id)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s})
}
