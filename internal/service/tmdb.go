package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"

	"cinemood-service/internal/model"
	"cinemood-service/pkg/httpclient"

	"github.com/rs/zerolog/log"
)

// TMDBService implements the catalog client against TMDB with API key
// rotation across configured keys.
type TMDBService struct {
	apiKeys   []string
	baseURL   string
	imageBase string
	client    *httpclient.Client
	keyIndex  uint64 // atomic counter for round-robin
}

// NewTMDBService creates a TMDBService with one or more API keys.
func NewTMDBService(client *httpclient.Client, apiKeys []string, baseURL, imageBase string) *TMDBService {
	return &TMDBService{
		apiKeys:   apiKeys,
		baseURL:   baseURL,
		imageBase: imageBase,
		client:    client,
	}
}

// getNextKey returns the next API key using round-robin
func (s *TMDBService) getNextKey() string {
	if len(s.apiKeys) == 0 {
		return ""
	}
	idx := atomic.AddUint64(&s.keyIndex, 1) - 1
	return s.apiKeys[idx%uint64(len(s.apiKeys))]
}

// IsConfigured returns true if at least one API key is set
func (s *TMDBService) IsConfigured() bool {
	return len(s.apiKeys) > 0
}

// KeyCount returns the number of configured API keys
func (s *TMDBService) KeyCount() int {
	return len(s.apiKeys)
}

// DiscoverByGenre fetches up to limit movies of a genre, sorted by the
// given order token.
func (s *TMDBService) DiscoverByGenre(ctx context.Context, genreID int, sortOrder string, limit int) ([]model.MovieRecord, error) {
	u, _ := url.Parse(s.baseURL + "/discover/movie")
	q := u.Query()
	q.Set("with_genres", fmt.Sprintf("%d", genreID))
	q.Set("sort_by", sortOrder)
	q.Set("include_adult", "false")
	q.Set("page", "1")
	u.RawQuery = q.Encode()

	results, err := s.fetchList(ctx, u.String())
	if err != nil {
		return nil, err
	}

	log.Debug().Int("genre", genreID).Int("count", len(results)).Msg("Fetched discover results")
	return s.normalizeMovies(results, limit), nil
}

// SearchByTitle searches the catalog by free-text title query.
func (s *TMDBService) SearchByTitle(ctx context.Context, query string, limit int) ([]model.MovieRecord, error) {
	u, _ := url.Parse(s.baseURL + "/search/movie")
	q := u.Query()
	q.Set("query", query)
	q.Set("include_adult", "false")
	q.Set("page", "1")
	u.RawQuery = q.Encode()

	results, err := s.fetchList(ctx, u.String())
	if err != nil {
		return nil, err
	}

	log.Debug().Str("query", query).Int("count", len(results)).Msg("Fetched search results")
	return s.normalizeMovies(results, limit), nil
}

// Trending fetches the trending list for the given window ("day" or
// "week").
func (s *TMDBService) Trending(ctx context.Context, window string, limit int) ([]model.MovieRecord, error) {
	if window != "day" && window != "week" {
		window = "week"
	}

	results, err := s.fetchList(ctx, fmt.Sprintf("%s/trending/movie/%s", s.baseURL, window))
	if err != nil {
		return nil, err
	}

	log.Debug().Str("window", window).Int("count", len(results)).Msg("Fetched trending results")
	return s.normalizeMovies(results, limit), nil
}

// fetchList performs an authenticated GET and decodes the shared TMDB
// list payload.
func (s *TMDBService) fetchList(ctx context.Context, targetURL string) ([]model.TMDBMovie, error) {
	apiKey := s.getNextKey()
	if apiKey == "" {
		return nil, &APIError{Kind: KindAuth, Err: errors.New("no API key configured")}
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Authorization", "Bearer "+apiKey)

	body, err := s.client.Get(ctx, targetURL, header)
	if err != nil {
		return nil, classify(err)
	}

	var resp model.TMDBListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &APIError{Kind: KindMalformed, Err: fmt.Errorf("failed to parse list response: %w", err)}
	}

	return resp.Results, nil
}

// classify maps transport-level failures onto the error taxonomy.
func classify(err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &APIError{Kind: KindAuth, Err: err}
		case http.StatusNotFound:
			return &APIError{Kind: KindNotFound, Err: err}
		case http.StatusTooManyRequests:
			return &APIError{Kind: KindRateLimited, Err: err}
		}
	}
	return &APIError{Kind: KindTransport, Err: err}
}

// normalizeMovies converts TMDB rows into MovieRecord, truncated to limit.
// Poster and rating stay nil when the upstream has no data: a row with
// zero votes gets a nil rating rather than 0.0.
func (s *TMDBService) normalizeMovies(results []model.TMDBMovie, limit int) []model.MovieRecord {
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	records := make([]model.MovieRecord, len(results))
	for i, m := range results {
		rec := model.MovieRecord{
			ID:          m.ID,
			Title:       m.Title,
			Overview:    m.Overview,
			ReleaseDate: m.ReleaseDate,
			VoteCount:   m.VoteCount,
			GenreIDs:    m.GenreIDs,
		}
		if m.PosterPath != "" {
			poster := s.imageBase + m.PosterPath
			rec.PosterURL = &poster
		}
		if m.VoteCount > 0 {
			rating := m.VoteAverage
			rec.Rating = &rating
		}
		records[i] = rec
	}
	return records
}
