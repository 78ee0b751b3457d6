package model

// Liked is tri-state: nil means the user expressed no opinion.
type Liked = *bool

func LikedValue(v bool) Liked {
	return &v
}

// LikedEqual treats two unset values as equal.
func LikedEqual(a, b Liked) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Interaction is the single remote record per (user, movie) pair. The
// backend upserts it as a whole, liked and rating travel together.
type Interaction struct {
	UserID  UserID  `json:"user_id"`
	MovieID MovieID `json:"movie_id"`
	Liked   Liked   `json:"is_liked"`
	Rating  int     `json:"rating"`
}

const (
	MinRating = 1
	MaxRating = 5

	// WatchlistRating backs watch-list membership: an add is recorded
	// remotely as liked=true with this rating.
	WatchlistRating = 5
)

// ClampRating forces a rating into the 1..5 scale.
func ClampRating(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}
