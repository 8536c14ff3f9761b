package mood

import (
	"strings"
	"testing"

	"cinemood-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryClassifierCategoryHasAGenre(t *testing.T) {
	// every category a keyword rule can produce must resolve
	for _, rule := range keywordRules {
		_, ok := GenreFor(rule.mood)
		assert.True(t, ok, "rule category %s has no genre mapping", rule.mood)
	}

	// the sentiment fallback categories too
	for _, cat := range []model.MoodCategory{model.MoodHappy, model.MoodSad, model.MoodBored} {
		_, ok := GenreFor(cat)
		assert.True(t, ok, "sentiment category %s has no genre mapping", cat)
	}

	// default stays unmapped so it routes to trending
	_, ok := GenreFor(model.MoodDefault)
	assert.False(t, ok)
}

func TestPrefacesContainNoForeignTriggers(t *testing.T) {
	// a preface fed back through keyword classification must never match
	// a rule of a different category
	for cat, preface := range prefaces {
		norm := normalize(preface)
		for _, rule := range keywordRules {
			for _, trigger := range rule.triggers {
				if strings.Contains(norm, trigger) {
					assert.Equal(t, cat, rule.mood,
						"preface for %s contains trigger %q of %s", cat, trigger, rule.mood)
				}
			}
		}
	}
}

func TestPrefacesReclassifyToSameCategory(t *testing.T) {
	// the stronger property: full classification of a preface lands on
	// its own category (the default preface is exempt, the default
	// category is never produced from free text)
	for _, cat := range moodOrder {
		if cat == model.MoodDefault {
			continue
		}
		assert.Equal(t, cat, Interpret(Preface(cat)), "preface for %s misclassifies", cat)
	}
}

func TestSentimentScore(t *testing.T) {
	assert.InDelta(t, 0.0, sentimentScore("wonderful awful"), 0.001)
	assert.InDelta(t, 2.0, sentimentScore("happy and wonderful"), 0.001)
	assert.InDelta(t, -1.0, sentimentScore("so much sadness"), 0.001)
	assert.InDelta(t, 0.5, sentimentScore("pumped"), 0.001)
	assert.InDelta(t, 1.5, sentimentScore("pumped and cheerful"), 0.001)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "i am so bored", normalize("  I  am \t SO   bored "))
	assert.Equal(t, "", normalize("   "))
}

func TestCatalogListsAllMoods(t *testing.T) {
	infos := Catalog()
	require.Len(t, infos, len(moodOrder))

	seen := map[model.MoodCategory]model.MoodInfo{}
	for _, info := range infos {
		assert.NotEmpty(t, info.Preface)
		seen[info.Mood] = info
	}

	require.Contains(t, seen, model.MoodBored)
	assert.Equal(t, genreComedy, seen[model.MoodBored].GenreID)
	require.Contains(t, seen, model.MoodDefault)
	assert.Zero(t, seen[model.MoodDefault].GenreID)
}
