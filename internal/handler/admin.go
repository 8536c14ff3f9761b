package handler

import (
	"net/http"

	"cinemood-service/internal/repository"
	"cinemood-service/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles status and analytics endpoints
type AdminHandler struct {
	tmdbService *service.TMDBService
	metrics     *repository.Metrics
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(tmdb *service.TMDBService, metrics *repository.Metrics) *AdminHandler {
	return &AdminHandler{
		tmdbService: tmdb,
		metrics:     metrics,
	}
}

// GetStatus returns service status
// GET /api/v1/status
func (h *AdminHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"tmdb_enabled": h.tmdbService.IsConfigured(),
		"tmdb_keys":    h.tmdbService.KeyCount(),
	})
}

// GetAnalytics returns overall API analytics, including the mood
// resolution distribution
// GET /api/v1/analytics
func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	stats, err := h.metrics.GetOverallStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  500,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": stats,
	})
}

// GetEndpointStats returns stats for a specific endpoint
// GET /api/v1/analytics/endpoint?path=/api/v1/suggest
func (h *AdminHandler) GetEndpointStats(c *gin.Context) {
	path := c.Query("path")

	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  400,
			"error": "path parameter required",
		})
		return
	}

	stats, err := h.metrics.GetEndpointStats(c.Request.Context(), path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  500,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": stats,
	})
}

// ResetAnalytics resets all analytics data
// DELETE /api/v1/analytics
func (h *AdminHandler) ResetAnalytics(c *gin.Context) {
	if err := h.metrics.ResetMetrics(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  500,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "all analytics data reset",
	})
}
