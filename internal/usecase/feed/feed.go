package usecase_feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cinematch/core/internal/model"
)

var (
	ErrFailedToLoadPopular = errors.New("failed to load popular movies")
	ErrFailedToLoadGenres  = errors.New("failed to load genre catalog")
	ErrStaleBuild          = errors.New("feed build superseded by a newer one")
)

const (
	RowNameRecommended = "Recommended"
	RowNameWatchlist   = "Watchlist"
	RowNamePopular     = "Popular"
)

type Gateway interface {
	PopularMovies(ctx context.Context, limit int) ([]model.Movie, error)
	MoviesByGenre(ctx context.Context, genreID int64, limit int) ([]model.Movie, error)
	Genres(ctx context.Context) ([]model.Genre, error)
	Recommendations(ctx context.Context, userID model.UserID, genreIDs []int64) ([]model.Movie, error)
}

type Watchlister interface {
	Movies() []model.Movie
}

type Notifier interface {
	FeedReady(generation uint64)
	FeedFailed(reason string)
}

// Usecase fans out the catalog fetches for the home feed and assembles
// the fixed row order: recommended, watch-list, popular, preferred
// genres, exploratory genres.
type Usecase struct {
	gateway   Gateway
	watchlist Watchlister
	notifier  Notifier
	logger    *slog.Logger

	popularLimit  int
	genreRowLimit int

	mu         sync.Mutex
	generation uint64
	published  model.Feed
	popular    []model.Movie

	genreMu sync.Mutex
	genres  []model.Genre
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithLimits(popularLimit, genreRowLimit int) UsecaseOption {
	return func(u *Usecase) {
		u.popularLimit = popularLimit
		u.genreRowLimit = genreRowLimit
	}
}

func New(
	gateway Gateway,
	watchlist Watchlister,
	notifier Notifier,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		gateway:       gateway,
		watchlist:     watchlist,
		notifier:      notifier,
		logger:        slog.Default(),
		popularLimit:  15,
		genreRowLimit: 10,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Genres returns the genre catalog, fetched once per process and cached.
func (u *Usecase) Genres(ctx context.Context) ([]model.Genre, error) {
	u.genreMu.Lock()
	defer u.genreMu.Unlock()

	if u.genres != nil {
		return u.genres, nil
	}
	genres, err := u.gateway.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadGenres, err)
	}
	u.genres = genres
	return genres, nil
}

// Build runs the concurrent aggregation. The popular fetch is
// load-bearing: its failure fails the whole build. Recommendation and
// per-genre failures degrade to missing rows. The build only publishes
// if no newer build finished first, stale results are discarded.
func (u *Usecase) Build(ctx context.Context, user *model.User, selected []int64) (model.Feed, error) {
	u.mu.Lock()
	u.generation++
	gen := u.generation
	u.mu.Unlock()

	genres, err := u.Genres(ctx)
	if err != nil {
		u.notifier.FeedFailed(err.Error())
		return model.Feed{}, err
	}

	var (
		popular     []model.Movie
		recommended []model.Movie
		genreRows   = make([][]model.Movie, len(genres))
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		movies, err := u.gateway.PopularMovies(gctx, u.popularLimit)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToLoadPopular, err)
		}
		popular = movies
		return nil
	})

	userID := model.EmptyUserID
	if user != nil {
		userID = user.ID
	}
	if userID != model.EmptyUserID || len(selected) > 0 {
		g.Go(func() error {
			movies, err := u.gateway.Recommendations(gctx, userID, selected)
			if err != nil {
				// Best-effort row, the feed stands without it.
				u.logger.Warn("recommendations fetch failed",
					slog.Int64("user_id", userID),
					slog.String("error", err.Error()))
				return nil
			}
			recommended = movies
			return nil
		})
	}

	for i, genre := range genres {
		i, genre := i, genre
		g.Go(func() error {
			movies, err := u.gateway.MoviesByGenre(gctx, genre.ID, u.genreRowLimit)
			if err != nil {
				// Row-granular tolerance: a failed genre row is
				// dropped, never fatal.
				u.logger.Warn("genre row fetch failed",
					slog.Int64("genre_id", genre.ID),
					slog.String("error", err.Error()))
				return nil
			}
			genreRows[i] = movies
			return nil
		})
	}

	// Barrier: never partition on a partial set.
	if err := g.Wait(); err != nil {
		u.notifier.FeedFailed(err.Error())
		return model.Feed{}, err
	}

	feed := u.assemble(gen, selected, genres, popular, recommended, genreRows)

	u.mu.Lock()
	defer u.mu.Unlock()
	if feed.Generation <= u.published.Generation {
		return feed, ErrStaleBuild
	}
	u.published = feed
	u.popular = popular
	u.notifier.FeedReady(feed.Generation)
	return feed, nil
}

// Current returns the last published feed. Zero generation means no
// build has completed yet.
func (u *Usecase) Current() model.Feed {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.published
}

// Popular exposes the hero banner seed from the last published build.
func (u *Usecase) Popular() []model.Movie {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]model.Movie, len(u.popular))
	copy(out, u.popular)
	return out
}

func (u *Usecase) assemble(
	gen uint64,
	selected []int64,
	genres []model.Genre,
	popular, recommended []model.Movie,
	genreRows [][]model.Movie,
) model.Feed {
	selectedSet := make(map[int64]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}

	// Preferred and exploratory partitions both preserve catalog order.
	var preferred, exploratory []model.FeedRow
	for i, genre := range genres {
		if len(genreRows[i]) == 0 {
			continue
		}
		row := model.FeedRow{
			Name:    genre.Name,
			GenreID: genre.ID,
			Movies:  genreRows[i],
		}
		if _, ok := selectedSet[genre.ID]; ok {
			row.Kind = model.RowPreferred
			preferred = append(preferred, row)
		} else {
			row.Kind = model.RowExploratory
			exploratory = append(exploratory, row)
		}
	}

	rows := make([]model.FeedRow, 0, len(preferred)+len(exploratory)+3)
	if len(recommended) > 0 {
		rows = append(rows, model.FeedRow{Kind: model.RowRecommended, Name: RowNameRecommended, Movies: recommended})
	}
	if watched := u.watchlist.Movies(); len(watched) > 0 {
		rows = append(rows, model.FeedRow{Kind: model.RowWatchlist, Name: RowNameWatchlist, Movies: watched})
	}
	if len(popular) > 0 {
		rows = append(rows, model.FeedRow{Kind: model.RowPopular, Name: RowNamePopular, Movies: popular})
	}
	rows = append(rows, preferred...)
	rows = append(rows, exploratory...)

	return model.Feed{Generation: gen, Rows: rows}
}
