package model

// RowKind tells the presentation layer which ranking surface a row
// came from. The feed order is a fixed policy, not a sort key.
type RowKind string

const (
	RowRecommended RowKind = "recommended"
	RowWatchlist   RowKind = "watchlist"
	RowPopular     RowKind = "popular"
	RowPreferred   RowKind = "preferred_genre"
	RowExploratory RowKind = "exploratory_genre"
)

type FeedRow struct {
	Kind    RowKind `json:"kind"`
	Name    string  `json:"name"`
	GenreID int64   `json:"genre_id,omitempty"`
	Movies  []Movie `json:"movies"`
}

// Feed is the assembled home view. Generation tags which build produced
// it so late-settling builds can be discarded instead of clobbering a
// newer view.
type Feed struct {
	Generation uint64    `json:"generation"`
	Rows       []FeedRow `json:"rows"`
}
