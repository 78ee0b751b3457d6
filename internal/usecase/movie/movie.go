package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cinematch/core/internal/model"
)

var (
	ErrFailedToLoadMovie = errors.New("failed to load movie")
	ErrMovieNotFound     = errors.New("movie not found")
)

type Gateway interface {
	Movie(ctx context.Context, id model.MovieID) (model.Movie, error)
	MovieGenres(ctx context.Context, id model.MovieID) ([]model.Genre, error)
	SearchMovies(ctx context.Context, query string, limit int) ([]model.Movie, error)
}

// Detail is what the movie page renders: the record plus its genre tags.
type Detail struct {
	Movie  model.Movie
	Genres []model.Genre
}

type Usecase struct {
	gateway Gateway
	logger  *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(gateway Gateway, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		gateway: gateway,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Detail fetches the movie and its genres concurrently. The movie fetch
// is load-bearing, the genre fetch degrades to an empty tag list.
func (u *Usecase) Detail(ctx context.Context, id model.MovieID) (Detail, error) {
	if id == model.EmptyMovieID {
		return Detail{}, ErrMovieNotFound
	}

	var detail Detail
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		movie, err := u.gateway.Movie(gctx, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToLoadMovie, err)
		}
		detail.Movie = movie
		return nil
	})

	g.Go(func() error {
		genres, err := u.gateway.MovieGenres(gctx, id)
		if err != nil {
			u.logger.Warn("movie genres fetch failed",
				slog.Int64("movie_id", id),
				slog.String("error", err.Error()))
			return nil
		}
		detail.Genres = genres
		return nil
	})

	if err := g.Wait(); err != nil {
		return Detail{}, err
	}
	return detail, nil
}

func (u *Usecase) Search(ctx context.Context, query string, limit int) ([]model.Movie, error) {
	movies, err := u.gateway.SearchMovies(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadMovie, err)
	}
	return movies, nil
}
