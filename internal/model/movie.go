package model

// MovieID is the canonical movie key. Catalog payloads carry it under
// several names depending on which backend collection produced the record.
type MovieID = int64

const EmptyMovieID MovieID = 0

type Movie struct {
	// One of these carries the identity. Never read them directly,
	// resolve through MovieKey.
	LensID  MovieID `json:"movieId,omitempty"`
	FlatID  MovieID `json:"movie_id,omitempty"`
	PlainID MovieID `json:"id,omitempty"`

	Title            string  `json:"title"`
	PosterURL        string  `json:"poster_url,omitempty"`
	ReleaseDate      string  `json:"release_date,omitempty"`
	Runtime          int     `json:"runtime,omitempty"`
	VoteAverage      float64 `json:"vote_average,omitempty"`
	Popularity       float64 `json:"popularity,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	LLMMetadata      string  `json:"llm_metadata,omitempty"`

	// External catalog identifiers.
	IMDBID int64 `json:"imdbId,omitempty"`
	TMDBID int64 `json:"tmdbId,omitempty"`
}

// MovieKey resolves the canonical identifier from whichever field the
// source happened to populate. ok is false when the record carries no
// resolvable identity; such movies are treated as absent everywhere.
func MovieKey(m Movie) (MovieID, bool) {
	switch {
	case m.LensID != EmptyMovieID:
		return m.LensID, true
	case m.FlatID != EmptyMovieID:
		return m.FlatID, true
	case m.PlainID != EmptyMovieID:
		return m.PlainID, true
	}
	return EmptyMovieID, false
}

type Genre struct {
	ID   int64  `json:"genre_id"`
	Name string `json:"genre_name"`
}
