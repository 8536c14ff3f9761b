package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cinemood-service/internal/model"
	"cinemood-service/internal/mood"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MoodRecorder records resolved mood categories for analytics
type MoodRecorder interface {
	RecordMoodResolution(ctx context.Context, mood model.MoodCategory) error
}

// SuggestHandler handles mood-based recommendation requests
type SuggestHandler struct {
	interpreter *mood.Interpreter
	cache       Cache
	recorder    MoodRecorder
	ttl         time.Duration
}

// NewSuggestHandler creates a new SuggestHandler. recorder may be nil.
func NewSuggestHandler(interpreter *mood.Interpreter, cache Cache, recorder MoodRecorder, ttl time.Duration) *SuggestHandler {
	return &SuggestHandler{
		interpreter: interpreter,
		cache:       cache,
		recorder:    recorder,
		ttl:         ttl,
	}
}

// GetSuggestion handles mood suggestion requests
// GET /api/v1/suggest?text=need+something+for+a+breakup&count=5
func (h *SuggestHandler) GetSuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	text := c.Query("text")
	count, _ := strconv.Atoi(c.DefaultQuery("count", "5"))

	// The cache key is derived from the resolved category, not the raw
	// text, so "I'm bored" and "so boring today" share one entry
	category := mood.Interpret(text)
	cacheKey := fmt.Sprintf("cinemood:suggest:%s:%d", category, count)

	if h.recorder != nil {
		if err := h.recorder.RecordMoodResolution(ctx, category); err != nil {
			log.Warn().Err(err).Msg("Failed to record mood resolution")
		}
	}

	var cached model.RecommendationResult
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		c.Set("cache_source", "redis-cache")
		c.JSON(http.StatusOK, model.APIResponse{
			Code:   200,
			Data:   cached,
			Source: "redis-cache",
		})
		return
	}

	result := h.interpreter.SuggestByMood(ctx, text, count)

	// A degraded (empty) result is not worth caching
	if len(result.Movies) > 0 {
		h.cache.Set(ctx, cacheKey, result, h.ttl)
	}

	log.Info().
		Str("mood", string(result.Mood)).
		Int("movies", len(result.Movies)).
		Msg("🎭 Mood suggestion served")

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   result,
		Source: "fresh",
	})
}

// DeleteSuggestCache clears all suggestion cache
// DELETE /api/v1/suggest
func (h *SuggestHandler) DeleteSuggestCache(c *gin.Context) {
	ctx := c.Request.Context()

	deleted, _ := h.cache.DeletePattern(ctx, "cinemood:suggest:*")

	log.Info().Int64("deleted", deleted).Msg("🗑️ Suggestion cache cleared")

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("suggestion cache cleared (%d entries)", deleted),
	})
}
