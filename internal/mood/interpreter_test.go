package mood

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cinemood-service/internal/model"
	"cinemood-service/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discoverCall struct {
	genreID int
	sort    string
	limit   int
}

type fakeCatalog struct {
	discoverCalls []discoverCall
	searchCalls   int
	trendingCalls int
	movies        []model.MovieRecord
	err           error
}

func (f *fakeCatalog) DiscoverByGenre(_ context.Context, genreID int, sortOrder string, limit int) ([]model.MovieRecord, error) {
	f.discoverCalls = append(f.discoverCalls, discoverCall{genreID, sortOrder, limit})
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

func (f *fakeCatalog) SearchByTitle(_ context.Context, _ string, _ int) ([]model.MovieRecord, error) {
	f.searchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

func (f *fakeCatalog) Trending(_ context.Context, _ string, _ int) ([]model.MovieRecord, error) {
	f.trendingCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

func makeMovies(n int) []model.MovieRecord {
	movies := make([]model.MovieRecord, n)
	for i := range movies {
		rating := 7.2
		movies[i] = model.MovieRecord{
			ID:     i + 1,
			Title:  fmt.Sprintf("Movie %d", i+1),
			Rating: &rating,
		}
	}
	return movies
}

func TestInterpretKeywordPriority(t *testing.T) {
	tests := []struct {
		text string
		want model.MoodCategory
	}{
		{"need something for a breakup", model.MoodLoveFailure},
		{"total heartbreak over here", model.MoodLoveFailure},
		// keyword rules beat the sentiment score
		{"happy about my breakup, honestly", model.MoodLoveFailure},
		{"I'm so angry right now", model.MoodAngry},
		{"angry and bored at the same time", model.MoodAngry},
		{"I am so bored, nothing to do", model.MoodBored},
		{"something romantic please", model.MoodRomance},
		// overlapping triggers: the earlier-declared rule wins
		{"romantic action thriller", model.MoodRomance},
		{"give me an action movie", model.MoodAction},
		{"an adventure with adrenaline", model.MoodAction},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Interpret(tt.text), "input %q", tt.text)
	}
}

func TestInterpretSentimentFallback(t *testing.T) {
	tests := []struct {
		text string
		want model.MoodCategory
	}{
		{"I feel happy and wonderful today", model.MoodHappy},
		{"I'm feeling happy", model.MoodHappy},
		{"so sad and lonely tonight", model.MoodSad},
		{"everything is awful and terrible", model.MoodSad},
		// no lexicon hit, score 0, lands on bored
		{"complete gibberish xyzzy", model.MoodBored},
		// substring matching: "sadness" counts as "sad"
		{"an evening full of sadness", model.MoodSad},
		// +0.5 arousal alone is not enough for happy
		{"feeling pumped", model.MoodBored},
		{"feeling pumped and cheerful", model.MoodHappy},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Interpret(tt.text), "input %q", tt.text)
	}
}

func TestInterpretGenreSynonym(t *testing.T) {
	assert.Equal(t, model.MoodCategory("horror"), Interpret("horror"))
	assert.Equal(t, model.MoodCategory("sci-fi"), Interpret("  Sci-Fi "))

	// genre id must resolve for synonym categories
	id, ok := GenreFor(model.MoodCategory("horror"))
	require.True(t, ok)
	assert.Equal(t, genreHorror, id)
}

func TestInterpretEmptyInput(t *testing.T) {
	assert.Equal(t, model.MoodDefault, Interpret(""))
	assert.Equal(t, model.MoodDefault, Interpret("   \t "))
}

func TestSuggestByMoodBored(t *testing.T) {
	catalog := &fakeCatalog{movies: makeMovies(5)}
	in := NewInterpreter(catalog)

	result := in.SuggestByMood(context.Background(), "I am so bored, nothing to do", 5)

	require.Len(t, catalog.discoverCalls, 1)
	assert.Equal(t, genreComedy, catalog.discoverCalls[0].genreID)
	assert.Equal(t, SortPopularityDesc, catalog.discoverCalls[0].sort)
	assert.Equal(t, model.MoodBored, result.Mood)
	assert.Equal(t, Preface(model.MoodBored), result.Message)
	assert.Len(t, result.Movies, 5)
}

func TestSuggestByMoodLoveFailure(t *testing.T) {
	catalog := &fakeCatalog{movies: makeMovies(3)}
	in := NewInterpreter(catalog)

	result := in.SuggestByMood(context.Background(), "just went through a breakup", 5)

	require.Len(t, catalog.discoverCalls, 1)
	assert.Equal(t, genreDrama, catalog.discoverCalls[0].genreID)
	assert.Equal(t, 3, catalog.discoverCalls[0].limit)

	require.Len(t, result.Movies, 6)
	assert.Equal(t, model.MoodLoveFailure, result.Mood)

	// the appended picks carry no catalog data
	for _, m := range result.Movies[3:] {
		assert.Nil(t, m.PosterURL)
		assert.Nil(t, m.Rating)
		assert.Zero(t, m.ID)
		assert.NotEmpty(t, m.Title)
	}
}

func TestSuggestByMoodLoveFailureDegraded(t *testing.T) {
	catalog := &fakeCatalog{err: &service.APIError{Kind: service.KindTransport, Err: errors.New("dial tcp: i/o timeout")}}
	in := NewInterpreter(catalog)

	result := in.SuggestByMood(context.Background(), "heartbroken again", 5)

	// the fixed picks still come through on catalog failure
	require.Len(t, result.Movies, 3)
	assert.Equal(t, Preface(model.MoodLoveFailure), result.Message)
}

func TestSuggestByMoodTransportFailure(t *testing.T) {
	catalog := &fakeCatalog{err: &service.APIError{Kind: service.KindTransport, Err: errors.New("dial tcp: i/o timeout")}}
	in := NewInterpreter(catalog)

	result := in.SuggestByMood(context.Background(), "I'm so angry right now", 5)

	assert.Equal(t, model.MoodAngry, result.Mood)
	assert.Equal(t, Preface(model.MoodAngry), result.Message)
	require.NotNil(t, result.Movies)
	assert.Empty(t, result.Movies)
}

func TestSuggestByMoodDefaultFallsBackToTrending(t *testing.T) {
	catalog := &fakeCatalog{movies: makeMovies(5)}
	in := NewInterpreter(catalog)

	result := in.SuggestByMood(context.Background(), "", 5)

	assert.Equal(t, 1, catalog.trendingCalls)
	assert.Empty(t, catalog.discoverCalls)
	assert.Equal(t, model.MoodDefault, result.Mood)
	assert.Equal(t, Preface(model.MoodDefault), result.Message)
}

func TestSuggestByMoodGenreSynonym(t *testing.T) {
	catalog := &fakeCatalog{movies: makeMovies(5)}
	in := NewInterpreter(catalog)

	result := in.SuggestByMood(context.Background(), "horror", 5)

	require.Len(t, catalog.discoverCalls, 1)
	assert.Equal(t, genreHorror, catalog.discoverCalls[0].genreID)
	assert.Equal(t, model.MoodCategory("horror"), result.Mood)
}

func TestSuggestByMoodBoundsResultCount(t *testing.T) {
	catalog := &fakeCatalog{movies: makeMovies(12)}
	in := NewInterpreter(catalog)

	result := in.SuggestByMood(context.Background(), "I'm feeling happy", 5)
	assert.Len(t, result.Movies, 5)

	// non-positive count falls back to the default bound
	result = in.SuggestByMood(context.Background(), "I'm feeling happy", 0)
	assert.Len(t, result.Movies, DefaultSuggestCount)
}

func TestSearchMoviesEmptyQueryShortCircuits(t *testing.T) {
	catalog := &fakeCatalog{movies: makeMovies(5)}
	in := NewInterpreter(catalog)

	for _, q := range []string{"", "   ", "\t\n"} {
		movies := in.SearchMovies(context.Background(), q, 5)
		require.NotNil(t, movies)
		assert.Empty(t, movies)
	}
	assert.Zero(t, catalog.searchCalls, "blank query must not hit the network")
}

func TestSearchMoviesDegradesOnFailure(t *testing.T) {
	catalog := &fakeCatalog{err: &service.APIError{Kind: service.KindRateLimited, Err: errors.New("HTTP 429")}}
	in := NewInterpreter(catalog)

	movies := in.SearchMovies(context.Background(), "inception", 5)
	require.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestGetTrendingMoviesTruncates(t *testing.T) {
	catalog := &fakeCatalog{movies: makeMovies(20)}
	in := NewInterpreter(catalog)

	movies := in.GetTrendingMovies(context.Background(), 5)
	assert.Len(t, movies, 5)
}
