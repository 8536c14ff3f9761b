package handler

import (
	"net/http"

	"cinemood-service/internal/model"
	"cinemood-service/internal/mood"

	"github.com/gin-gonic/gin"
)

// MoodsHandler exposes the static mood catalog
type MoodsHandler struct{}

// NewMoodsHandler creates a new MoodsHandler
func NewMoodsHandler() *MoodsHandler {
	return &MoodsHandler{}
}

// GetMoods returns the mood catalog for UI chips
// GET /api/v1/moods
func (h *MoodsHandler) GetMoods(c *gin.Context) {
	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: mood.Catalog(),
	})
}
