package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cinemood-service/internal/model"
	"cinemood-service/internal/mood"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SearchHandler handles title search requests
type SearchHandler struct {
	interpreter *mood.Interpreter
	cache       Cache
	ttl         time.Duration
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(interpreter *mood.Interpreter, cache Cache, ttl time.Duration) *SearchHandler {
	return &SearchHandler{
		interpreter: interpreter,
		cache:       cache,
		ttl:         ttl,
	}
}

// Search handles title search requests
// GET /api/v1/search?q=inception&limit=10
func (h *SearchHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	query := strings.TrimSpace(c.Query("q"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if query == "" {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:    400,
			Error:   "missing search query parameter q",
			Message: "Type a movie title to search.",
		})
		return
	}

	cacheKey := fmt.Sprintf("cinemood:search:%s:%d", strings.ToLower(query), limit)

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

	log.Info().Str("query", query).Msg("🔍 Searching catalog")

	movies := h.interpreter.SearchMovies(ctx, query, limit)

	if len(movies) > 0 {
		h.cache.Set(ctx, cacheKey, movies, h.ttl)
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   movies,
		Source: "fresh",
	})
}

// DeleteSearchCache clears all search cache
// DELETE /api/v1/search
func (h *SearchHandler) DeleteSearchCache(c *gin.Context) {
	ctx := c.Request.Context()

	deleted, _ := h.cache.DeletePattern(ctx, "cinemood:search:*")

	log.Info().Int64("deleted", deleted).Msg("🗑️ Search cache cleared")

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("search cache cleared (%d entries)", deleted),
	})
}
