package model

// ================== API response ==================

// APIResponse is the standard API response format
type APIResponse struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Source  string      `json:"source,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ================== Mood model ==================

// MoodCategory is the interpreted emotional/intent state of a user query.
// The classifier produces one of the constants below; genre-synonym inputs
// ("horror", "sci-fi", ...) pass through as their own category value.
type MoodCategory string

const (
	MoodHappy       MoodCategory = "happy"
	MoodSad         MoodCategory = "sad"
	MoodAngry       MoodCategory = "angry"
	MoodBored       MoodCategory = "bored"
	MoodRomance     MoodCategory = "romance"
	MoodLoveFailure MoodCategory = "love_failure"
	MoodAction      MoodCategory = "action"
	MoodDefault     MoodCategory = "default"
)

// MoodInfo describes one entry of the mood catalog exposed to UI callers.
type MoodInfo struct {
	Mood    MoodCategory `json:"mood"`
	GenreID int          `json:"genre_id,omitempty"`
	Preface string       `json:"preface"`
}

// ================== Movie model ==================

// MovieRecord is a catalog movie normalized from the upstream metadata API.
// PosterURL and Rating are nil when the upstream has no data for them;
// a rating, when present, lies in [0, 10].
type MovieRecord struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	PosterURL   *string  `json:"poster_url,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	VoteCount   int      `json:"vote_count"`
	GenreIDs    []int    `json:"genre_ids,omitempty"`
}

// RecommendationResult is the answer to one mood query: a human-readable
// preface plus an ordered, possibly empty movie list.
type RecommendationResult struct {
	Mood    MoodCategory  `json:"mood"`
	Message string        `json:"message"`
	Movies  []MovieRecord `json:"movies"`
}

// ================== TMDB API responses ==================

// TMDBMovie is a single row of a TMDB list response.
type TMDBMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	GenreIDs    []int   `json:"genre_ids"`
}

// TMDBListResponse is the shared shape of discover, search and trending
// responses.
type TMDBListResponse struct {
	Page         int         `json:"page"`
	Results      []TMDBMovie `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}
