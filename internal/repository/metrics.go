package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"cinemood-service/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Metrics stores API and mood-resolution metrics in Redis
type Metrics struct {
	client *redis.Client
}

// EndpointStats represents statistics for an API endpoint
type EndpointStats struct {
	Path         string  `json:"path"`
	TotalCalls   int64   `json:"total_calls"`
	SuccessCalls int64   `json:"success_calls"`
	ErrorCalls   int64   `json:"error_calls"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	MaxLatencyMs float64 `json:"max_latency_ms"`
	MinLatencyMs float64 `json:"min_latency_ms"`
	CacheHits    int64   `json:"cache_hits"`
	CacheMisses  int64   `json:"cache_misses"`
}

// DailyStats represents daily API statistics
type DailyStats struct {
	Date       string  `json:"date"`
	TotalCalls int64   `json:"total_calls"`
	AvgLatency float64 `json:"avg_latency"`
}

// OverallStats represents overall system statistics
type OverallStats struct {
	TotalAPICalls    int64            `json:"total_api_calls"`
	TodayAPICalls    int64            `json:"today_api_calls"`
	AvgLatencyMs     float64          `json:"avg_latency_ms"`
	CacheHitRate     float64          `json:"cache_hit_rate"`
	ErrorRate        float64          `json:"error_rate"`
	TopEndpoints     []EndpointStats  `json:"top_endpoints"`
	DailyTrend       []DailyStats     `json:"daily_trend"`
	MoodDistribution map[string]int64 `json:"mood_distribution"`
	Uptime           int64            `json:"uptime_seconds"`
}

// NewMetrics creates a new Metrics instance
func NewMetrics(redisURL string) (*Metrics, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &Metrics{client: redis.NewClient(opt)}, nil
}

// RecordAPICall records an API call
func (m *Metrics) RecordAPICall(ctx context.Context, path string, statusCode int, latencyMs float64, cacheHit bool) error {
	today := time.Now().Format("2006-01-02")

	pipe := m.client.Pipeline()

	pathKey := fmt.Sprintf("metrics:path:%s", path)
	pipe.HIncrBy(ctx, pathKey, "total", 1)
	pipe.HIncrByFloat(ctx, pathKey, "latency_sum", latencyMs)
	pipe.HSetNX(ctx, pathKey, "min_latency", latencyMs)
	pipe.HSetNX(ctx, pathKey, "max_latency", latencyMs)

	if statusCode >= 200 && statusCode < 400 {
		pipe.HIncrBy(ctx, pathKey, "success", 1)
	} else {
		pipe.HIncrBy(ctx, pathKey, "error", 1)
	}

	if cacheHit {
		pipe.HIncrBy(ctx, pathKey, "cache_hits", 1)
	} else {
		pipe.HIncrBy(ctx, pathKey, "cache_misses", 1)
	}

	dailyKey := fmt.Sprintf("metrics:daily:%s", today)
	pipe.HIncrBy(ctx, dailyKey, "total", 1)
	pipe.HIncrByFloat(ctx, dailyKey, "latency_sum", latencyMs)
	pipe.Expire(ctx, dailyKey, 30*24*time.Hour) // keep 30 days

	pipe.Incr(ctx, "metrics:global:total")
	pipe.IncrByFloat(ctx, "metrics:global:latency_sum", latencyMs)

	pipe.SAdd(ctx, "metrics:paths", path)

	_, err := pipe.Exec(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to record metrics")
	}
	return err
}

// RecordMoodResolution counts how often the classifier resolves each mood
// category, for the analytics dashboard.
func (m *Metrics) RecordMoodResolution(ctx context.Context, mood model.MoodCategory) error {
	return m.client.HIncrBy(ctx, "metrics:moods", string(mood), 1).Err()
}

// GetMoodDistribution returns resolution counts per mood category
func (m *Metrics) GetMoodDistribution(ctx context.Context) (map[string]int64, error) {
	result, err := m.client.HGetAll(ctx, "metrics:moods").Result()
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int64, len(result))
	for mood, count := range result {
		n, _ := strconv.ParseInt(count, 10, 64)
		dist[mood] = n
	}
	return dist, nil
}

// GetEndpointStats gets statistics for a specific API path
func (m *Metrics) GetEndpointStats(ctx context.Context, path string) (*EndpointStats, error) {
	pathKey := fmt.Sprintf("metrics:path:%s", path)

	result, err := m.client.HGetAll(ctx, pathKey).Result()
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return &EndpointStats{Path: path}, nil
	}

	total, _ := strconv.ParseInt(result["total"], 10, 64)
	success, _ := strconv.ParseInt(result["success"], 10, 64)
	errors, _ := strconv.ParseInt(result["error"], 10, 64)
	latencySum, _ := strconv.ParseFloat(result["latency_sum"], 64)
	minLatency, _ := strconv.ParseFloat(result["min_latency"], 64)
	maxLatency, _ := strconv.ParseFloat(result["max_latency"], 64)
	cacheHits, _ := strconv.ParseInt(result["cache_hits"], 10, 64)
	cacheMisses, _ := strconv.ParseInt(result["cache_misses"], 10, 64)

	avgLatency := 0.0
	if total > 0 {
		avgLatency = latencySum / float64(total)
	}

	return &EndpointStats{
		Path:         path,
		TotalCalls:   total,
		SuccessCalls: success,
		ErrorCalls:   errors,
		AvgLatencyMs: avgLatency,
		MaxLatencyMs: maxLatency,
		MinLatencyMs: minLatency,
		CacheHits:    cacheHits,
		CacheMisses:  cacheMisses,
	}, nil
}

// GetOverallStats gets overall system statistics
func (m *Metrics) GetOverallStats(ctx context.Context) (*OverallStats, error) {
	stats := &OverallStats{}

	total, _ := m.client.Get(ctx, "metrics:global:total").Int64()
	latencySum, _ := m.client.Get(ctx, "metrics:global:latency_sum").Float64()
	stats.TotalAPICalls = total

	if total > 0 {
		stats.AvgLatencyMs = latencySum / float64(total)
	}

	today := time.Now().Format("2006-01-02")
	todayKey := fmt.Sprintf("metrics:daily:%s", today)
	todayCalls, _ := m.client.HGet(ctx, todayKey, "total").Int64()
	stats.TodayAPICalls = todayCalls

	paths, _ := m.client.SMembers(ctx, "metrics:paths").Result()
	var allStats []EndpointStats
	var totalCacheHits, totalCacheMisses, totalErrors int64

	for _, path := range paths {
		pathStats, err := m.GetEndpointStats(ctx, path)
		if err == nil && pathStats.TotalCalls > 0 {
			allStats = append(allStats, *pathStats)
			totalCacheHits += pathStats.CacheHits
			totalCacheMisses += pathStats.CacheMisses
			totalErrors += pathStats.ErrorCalls
		}
	}

	sort.Slice(allStats, func(i, j int) bool {
		return allStats[i].TotalCalls > allStats[j].TotalCalls
	})

	if len(allStats) > 10 {
		stats.TopEndpoints = allStats[:10]
	} else {
		stats.TopEndpoints = allStats
	}

	totalCacheOps := totalCacheHits + totalCacheMisses
	if totalCacheOps > 0 {
		stats.CacheHitRate = float64(totalCacheHits) / float64(totalCacheOps) * 100
	}

	if total > 0 {
		stats.ErrorRate = float64(totalErrors) / float64(total) * 100
	}

	stats.DailyTrend = m.getDailyTrend(ctx, 7)

	if dist, err := m.GetMoodDistribution(ctx); err == nil {
		stats.MoodDistribution = dist
	}

	startTime, err := m.client.Get(ctx, "metrics:server:start_time").Int64()
	if err == nil && startTime > 0 {
		stats.Uptime = time.Now().Unix() - startTime
	}

	return stats, nil
}

// getDailyTrend gets daily statistics for the last N days
func (m *Metrics) getDailyTrend(ctx context.Context, days int) []DailyStats {
	var trend []DailyStats

	for i := days - 1; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		dailyKey := fmt.Sprintf("metrics:daily:%s", date)

		result, err := m.client.HGetAll(ctx, dailyKey).Result()
		if err != nil {
			continue
		}

		total, _ := strconv.ParseInt(result["total"], 10, 64)
		latencySum, _ := strconv.ParseFloat(result["latency_sum"], 64)

		avgLatency := 0.0
		if total > 0 {
			avgLatency = latencySum / float64(total)
		}

		trend = append(trend, DailyStats{
			Date:       date,
			TotalCalls: total,
			AvgLatency: avgLatency,
		})
	}

	return trend
}

// RecordServerStart records server start time
func (m *Metrics) RecordServerStart(ctx context.Context) {
	m.client.Set(ctx, "metrics:server:start_time", time.Now().Unix(), 0)
}

// ResetMetrics resets all metrics
func (m *Metrics) ResetMetrics(ctx context.Context) error {
	keys, err := m.client.Keys(ctx, "metrics:*").Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return m.client.Del(ctx, keys...).Err()
	}

	return nil
}

// Close closes the Redis connection
func (m *Metrics) Close() error {
	return m.client.Close()
}
