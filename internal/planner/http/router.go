package http

import "github.com/gin-gonic/gin"

// Register attaches the planner routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/applications", h.listApplications)
	rg.POST("/applications", h.createApplication)
	rg.GET("/application-details", h.getApplication)
	rg.PUT("/application-details", h.updateApplication)
	rg.DELETE("/application-details", h.deleteApplication)

	rg.GET("/features", h.listFeatures)
	rg.POST("/features", h.bulkCreateFeatures)
	rg.GET("/feature-details", h.getFeature)
	rg.POST("/feature-details", h.createFeature)
	rg.PUT("/feature-details", h.updateFeature)
	rg.DELETE("/feature-details", h.deleteFeature)

	rg.GET("/stories", h.listStories)
	rg.GET("/story-details", h.getStory)
	rg.POST("/story-details", h.createStory)
	rg.PUT("/story-details", h.updateStory)
	rg.DELETE("/story-details", h.deleteStory)
}
