package mood

import (
	"context"
	"strings"

	"cinemood-service/internal/model"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultSuggestCount bounds a suggestion list when the caller does
	// not say how many movies it wants.
	DefaultSuggestCount = 5

	// SortPopularityDesc is the catalog sort token for discover calls.
	SortPopularityDesc = "popularity.desc"

	// TrendingWindowWeek is the aggregation window for the trending
	// fallback path.
	TrendingWindowWeek = "week"

	// loveFailureFetchCount is how many dramas the love_failure path
	// pulls from the catalog before the fixed picks are appended.
	loveFailureFetchCount = 3
)

// CatalogClient is the slice of the movie-metadata API the interpreter
// consumes. Implementations report failures as service.APIError kinds so
// the degrade policy here stays deterministic in tests.
type CatalogClient interface {
	DiscoverByGenre(ctx context.Context, genreID int, sortOrder string, limit int) ([]model.MovieRecord, error)
	SearchByTitle(ctx context.Context, query string, limit int) ([]model.MovieRecord, error)
	Trending(ctx context.Context, window string, limit int) ([]model.MovieRecord, error)
}

// Interpreter turns free-text mood input into movie recommendations.
// It is stateless; a single instance is safe for concurrent use.
type Interpreter struct {
	catalog CatalogClient
}

// NewInterpreter creates an Interpreter backed by the given catalog.
func NewInterpreter(catalog CatalogClient) *Interpreter {
	return &Interpreter{catalog: catalog}
}

// normalize lowercases the input and collapses runs of whitespace.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// sentimentScore is the naive lexicon score: +1 per positive word, -1 per
// negative word, +0.5 per high-arousal word, all substring-based.
func sentimentScore(norm string) float64 {
	score := 0.0
	for _, w := range positiveWords {
		if strings.Contains(norm, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(norm, w) {
			score--
		}
	}
	for _, w := range arousalWords {
		if strings.Contains(norm, w) {
			score += 0.5
		}
	}
	return score
}

// Interpret classifies free text into a mood category.
//
// Keyword rules are checked first, in declaration order. A query that is
// exactly a genre name passes through as its own category. Everything else
// falls to the sentiment score: >0.5 happy, <-0.5 sad, otherwise bored.
// Empty input resolves to MoodDefault.
func Interpret(text string) model.MoodCategory {
	norm := normalize(text)
	if norm == "" {
		return model.MoodDefault
	}

	for _, rule := range keywordRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(norm, trigger) {
				return rule.mood
			}
		}
	}

	if _, ok := genreSynonyms[norm]; ok {
		return model.MoodCategory(norm)
	}

	switch score := sentimentScore(norm); {
	case score > 0.5:
		return model.MoodHappy
	case score < -0.5:
		return model.MoodSad
	default:
		return model.MoodBored
	}
}

// SuggestByMood classifies text and returns a recommendation for the
// resolved category. It always returns a well-formed result: catalog
// failures degrade to an empty movie list with the preface intact, so
// callers never need a fallback list of their own.
func (in *Interpreter) SuggestByMood(ctx context.Context, text string, count int) model.RecommendationResult {
	if count <= 0 {
		count = DefaultSuggestCount
	}

	category := Interpret(text)

	if category == model.MoodLoveFailure {
		return in.suggestLoveFailure(ctx)
	}

	genreID, ok := GenreFor(category)
	if !ok {
		// Unmapped category: trending fallback, never an undefined lookup.
		return model.RecommendationResult{
			Mood:    category,
			Message: Preface(category),
			Movies:  in.GetTrendingMovies(ctx, count),
		}
	}

	movies, err := in.catalog.DiscoverByGenre(ctx, genreID, SortPopularityDesc, count)
	if err != nil {
		log.Warn().Err(err).Str("mood", string(category)).Int("genre", genreID).Msg("discover failed, degrading to empty list")
		movies = nil
	}

	return model.RecommendationResult{
		Mood:    category,
		Message: Preface(category),
		Movies:  clamp(movies, count),
	}
}

// suggestLoveFailure fetches a few dramas and appends the fixed
// inspirational picks. This path does not go through the generic
// per-genre dispatch.
func (in *Interpreter) suggestLoveFailure(ctx context.Context) model.RecommendationResult {
	movies, err := in.catalog.DiscoverByGenre(ctx, genreDrama, SortPopularityDesc, loveFailureFetchCount)
	if err != nil {
		log.Warn().Err(err).Msg("discover failed on love_failure path")
		movies = nil
	}
	movies = clamp(movies, loveFailureFetchCount)
	movies = append(movies, inspirationalPicks...)

	return model.RecommendationResult{
		Mood:    model.MoodLoveFailure,
		Message: Preface(model.MoodLoveFailure),
		Movies:  movies,
	}
}

// SearchMovies is a passthrough to the catalog title search. A blank query
// short-circuits to an empty list without touching the network.
func (in *Interpreter) SearchMovies(ctx context.Context, query string, count int) []model.MovieRecord {
	if count <= 0 {
		count = DefaultSuggestCount
	}
	if strings.TrimSpace(query) == "" {
		return []model.MovieRecord{}
	}

	movies, err := in.catalog.SearchByTitle(ctx, query, count)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("search failed, degrading to empty list")
		return []model.MovieRecord{}
	}
	return clamp(movies, count)
}

// GetTrendingMovies is a passthrough to the weekly trending list.
func (in *Interpreter) GetTrendingMovies(ctx context.Context, count int) []model.MovieRecord {
	if count <= 0 {
		count = DefaultSuggestCount
	}

	movies, err := in.catalog.Trending(ctx, TrendingWindowWeek, count)
	if err != nil {
		log.Warn().Err(err).Msg("trending fetch failed, degrading to empty list")
		return []model.MovieRecord{}
	}
	return clamp(movies, count)
}

// clamp bounds the list to count entries and never returns nil, so JSON
// renders [] rather than null.
func clamp(movies []model.MovieRecord, count int) []model.MovieRecord {
	if movies == nil {
		return []model.MovieRecord{}
	}
	if len(movies) > count {
		return movies[:count]
	}
	return movies
}
