package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cinemood-service/internal/model"
	"cinemood-service/internal/mood"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TrendingHandler handles trending list requests
type TrendingHandler struct {
	interpreter *mood.Interpreter
	cache       Cache
	ttl         time.Duration
}

// NewTrendingHandler creates a new TrendingHandler
func NewTrendingHandler(interpreter *mood.Interpreter, cache Cache, ttl time.Duration) *TrendingHandler {
	return &TrendingHandler{
		interpreter: interpreter,
		cache:       cache,
		ttl:         ttl,
	}
}

// GetTrending returns the weekly trending list
// GET /api/v1/trending?limit=5
func (h *TrendingHandler) GetTrending(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	cacheKey := fmt.Sprintf("cinemood:trending:%d", limit)

	var cached []model.MovieRecord
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		c.Set("cache_source", "redis-cache")
		c.JSON(http.StatusOK, model.APIResponse{
			Code:   200,
			Data:   cached,
			Source: "redis-cache",
		})
		return
	}

	movies := h.interpreter.GetTrendingMovies(ctx, limit)

	if len(movies) > 0 {
		h.cache.Set(ctx, cacheKey, movies, h.ttl)
	}

	log.Info().Int("movies", len(movies)).Msg("📈 Trending list served")

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   movies,
		Source: "fresh",
	})
}

// DeleteTrendingCache clears the trending cache
// DELETE /api/v1/trending
func (h *TrendingHandler) DeleteTrendingCache(c *gin.Context) {
	ctx := c.Request.Context()

	deleted, _ := h.cache.DeletePattern(ctx, "cinemood:trending:*")

	log.Info().Int64("deleted", deleted).Msg("🗑️ Trending cache cleared")

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("trending cache cleared (%d entries)", deleted),
	})
}
