package mood

import (
	"fmt"

	"cinemood-service/internal/model"
)

// TMDB genre taxonomy codes used by the mood table and synonym lookups.
const (
	genreAction    = 28
	genreAdventure = 12
	genreAnimation = 16
	genreComedy    = 35
	genreDrama     = 18
	genreFamily    = 10751
	genreFantasy   = 14
	genreHorror    = 27
	genreMusic     = 10402
	genreRomance   = 10749
	genreSciFi     = 878
	genreThriller  = 53
)

// keywordRule binds a set of trigger substrings to a mood category.
type keywordRule struct {
	mood     model.MoodCategory
	triggers []string
}

// keywordRules is evaluated in declaration order and the first match wins.
// Several trigger sets overlap ("romantic action thriller" hits both
// romance and action), so the order here is product behavior, not an
// implementation detail.
var keywordRules = []keywordRule{
	{model.MoodLoveFailure, []string{"breakup", "break up", "heartbreak", "heartbroken", "love failure", "dumped", "got dumped"}},
	{model.MoodAngry, []string{"angry", "furious", "rage", "annoyed", "frustrated", "pissed"}},
	{model.MoodBored, []string{"bored", "boring", "nothing to do", "dull"}},
	{model.MoodRomance, []string{"romance", "romantic", "love story", "date night"}},
	{model.MoodAction, []string{"action", "adventure", "thriller", "adrenaline"}},
}

// Sentiment lexicons. Matching is substring-based on the normalized input,
// so "sadness" counts as "sad" and "joyful" as "joy".
var (
	positiveWords = []string{"happy", "joy", "great", "wonderful", "awesome", "amazing", "good", "fantastic", "cheerful", "upbeat", "delighted"}
	negativeWords = []string{"sad", "unhappy", "depress", "down", "cry", "lonely", "miserable", "gloomy", "awful", "terrible"}
	arousalWords  = []string{"pumped", "hyped", "energetic", "intense", "wild"}
)

// moodGenres maps every category the classifier can produce to a catalog
// genre. MoodDefault is deliberately absent: a missing entry routes to the
// trending fallback, never to an undefined lookup.
var moodGenres = map[model.MoodCategory]int{
	model.MoodHappy:       genreComedy,
	model.MoodSad:         genreDrama,
	model.MoodAngry:       genreAction,
	model.MoodBored:       genreComedy,
	model.MoodRomance:     genreRomance,
	model.MoodLoveFailure: genreDrama,
	model.MoodAction:      genreAction,
}

// genreSynonyms lets a query that is simply a genre name skip the mood
// table and hit the catalog directly.
var genreSynonyms = map[string]int{
	"action":          genreAction,
	"adventure":       genreAdventure,
	"animation":       genreAnimation,
	"anime":           genreAnimation,
	"comedy":          genreComedy,
	"funny":           genreComedy,
	"drama":           genreDrama,
	"family":          genreFamily,
	"fantasy":         genreFantasy,
	"horror":          genreHorror,
	"scary":           genreHorror,
	"music":           genreMusic,
	"musical":         genreMusic,
	"romance":         genreRomance,
	"sci-fi":          genreSciFi,
	"scifi":           genreSciFi,
	"science fiction": genreSciFi,
	"thriller":        genreThriller,
}

// prefaces are the hand-authored per-category reply openers. They must not
// contain trigger keywords of any other category, otherwise a preface fed
// back through the classifier would flip categories (covered by a test).
var prefaces = map[model.MoodCategory]string{
	model.MoodHappy:       "You sound upbeat! Here are some crowd-pleasers to keep the good vibes going.",
	model.MoodSad:         "Sorry you're feeling down. A few gentle, heartfelt films to keep you company.",
	model.MoodAngry:       "Sounds like you're angry. These picks should help you blow off some steam.",
	model.MoodBored:       "Bored, huh? These should shake the evening up a little.",
	model.MoodRomance:     "In the mood for romance? These love stories should set the tone.",
	model.MoodLoveFailure: "Heartbreak is rough. These stories about starting over might help a little.",
	model.MoodAction:      "Buckle up. Full-throttle action picks coming right up.",
	model.MoodDefault:     "Not sure what you're in the mood for? Here's what everyone is watching this week.",
}

// moodOrder fixes the listing order of the mood catalog endpoint.
var moodOrder = []model.MoodCategory{
	model.MoodHappy,
	model.MoodSad,
	model.MoodAngry,
	model.MoodBored,
	model.MoodRomance,
	model.MoodLoveFailure,
	model.MoodAction,
	model.MoodDefault,
}

// inspirationalPicks are the fixed titles appended on the love_failure
// path. They carry no catalog identity, so poster and rating stay nil.
var inspirationalPicks = []model.MovieRecord{
	{Title: "Eternal Sunshine of the Spotless Mind", Overview: "Letting go of a relationship, and what remains of us afterwards."},
	{Title: "Silver Linings Playbook", Overview: "Putting a life back together, one awkward step at a time."},
	{Title: "500 Days of Summer", Overview: "Not a love story. A story about love, and moving on from it."},
}

// Preface returns the reply opener for a category. Genre-synonym
// categories get a generated opener; anything unknown falls back to the
// default one.
func Preface(category model.MoodCategory) string {
	if p, ok := prefaces[category]; ok {
		return p
	}
	if _, ok := genreSynonyms[string(category)]; ok {
		return fmt.Sprintf("Coming right up: a hand-picked %s lineup.", category)
	}
	return prefaces[model.MoodDefault]
}

// GenreFor resolves a category to its catalog genre identifier. The second
// return is false for categories that route to the trending fallback.
func GenreFor(category model.MoodCategory) (int, bool) {
	if id, ok := moodGenres[category]; ok {
		return id, true
	}
	if id, ok := genreSynonyms[string(category)]; ok {
		return id, true
	}
	return 0, false
}

// Catalog returns the mood table in a fixed order for UI callers.
func Catalog() []model.MoodInfo {
	infos := make([]model.MoodInfo, 0, len(moodOrder))
	for _, cat := range moodOrder {
		info := model.MoodInfo{Mood: cat, Preface: Preface(cat)}
		if id, ok := moodGenres[cat]; ok {
			info.GenreID = id
		}
		infos = append(infos, info)
	}
	return infos
}
