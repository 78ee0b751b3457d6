package usecase_watchlist

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cinematch/core/internal/model"
)

type Gateway interface {
	UpsertInteraction(ctx context.Context, userID model.UserID, movieID model.MovieID, liked model.Liked, rating int) error
	DeleteInteraction(ctx context.Context, userID model.UserID, movieID model.MovieID) error
}

type Persistence interface {
	Put(key string, value any) error
	Get(key string, out any) error
}

type Notifier interface {
	AuthRequired()
}

// Usecase owns the per-user watch-list. The persisted local list is the
// sole read source for membership, the remote interaction record
// (liked=true, rating=5) is a write-through side effect.
type Usecase struct {
	gateway     Gateway
	persistence Persistence
	notifier    Notifier
	logger      *slog.Logger

	mu     sync.Mutex
	movies []model.Movie
	userID model.UserID
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(
	gateway Gateway,
	persistence Persistence,
	notifier Notifier,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		gateway:     gateway,
		persistence: persistence,
		notifier:    notifier,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Sync loads the persisted list for the (re)established user session.
// An absent key means an empty list. No merge with server records is
// performed.
func (u *Usecase) Sync(user *model.User) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if user == nil {
		u.userID = model.EmptyUserID
		u.movies = nil
		return
	}

	u.userID = user.ID
	u.movies = nil

	var saved []model.Movie
	if err := u.persistence.Get(listKey(user.ID), &saved); err == nil {
		u.movies = saved
	}
}

// Add prepends the movie (most recently added first) unless it is
// already present by identity. The in-memory and persisted list update
// optimistically, gateway failure is logged and reconciled on the next
// write.
func (u *Usecase) Add(ctx context.Context, user *model.User, movie model.Movie) {
	if user == nil {
		u.notifier.AuthRequired()
		return
	}
	movieID, ok := model.MovieKey(movie)
	if !ok {
		return
	}

	u.mu.Lock()
	if u.containsLocked(movieID) {
		u.mu.Unlock()
		return
	}
	u.movies = append([]model.Movie{movie}, u.movies...)
	snapshot := u.snapshotLocked()
	u.mu.Unlock()

	u.persist(user.ID, snapshot)

	if err := u.gateway.UpsertInteraction(ctx, user.ID, movieID, model.LikedValue(true), model.WatchlistRating); err != nil {
		u.logger.Error("watchlist interaction write failed",
			slog.Int64("user_id", user.ID),
			slog.Int64("movie_id", movieID),
			slog.String("error", err.Error()))
	}
}

// Remove filters the movie out by identity and deletes the backing
// interaction record. No-op when absent.
func (u *Usecase) Remove(ctx context.Context, user *model.User, movie model.Movie) {
	if user == nil {
		return
	}
	movieID, ok := model.MovieKey(movie)
	if !ok {
		return
	}

	u.mu.Lock()
	if !u.containsLocked(movieID) {
		u.mu.Unlock()
		return
	}
	kept := u.movies[:0:0]
	for _, m := range u.movies {
		if id, resolved := model.MovieKey(m); resolved && id == movieID {
			continue
		}
		kept = append(kept, m)
	}
	u.movies = kept
	snapshot := u.snapshotLocked()
	u.mu.Unlock()

	u.persist(user.ID, snapshot)

	if err := u.gateway.DeleteInteraction(ctx, user.ID, movieID); err != nil {
		u.logger.Error("watchlist interaction delete failed",
			slog.Int64("user_id", user.ID),
			slog.Int64("movie_id", movieID),
			slog.String("error", err.Error()))
	}
}

// Contains tests membership against the in-memory cache using the same
// identity rule as every other component.
func (u *Usecase) Contains(movie model.Movie) bool {
	movieID, ok := model.MovieKey(movie)
	if !ok {
		return false
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	return u.containsLocked(movieID)
}

// Movies returns a snapshot in most-recently-added order.
func (u *Usecase) Movies() []model.Movie {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

func (u *Usecase) containsLocked(movieID model.MovieID) bool {
	for _, m := range u.movies {
		if id, ok := model.MovieKey(m); ok && id == movieID {
			return true
		}
	}
	return false
}

func (u *Usecase) snapshotLocked() []model.Movie {
	out := make([]model.Movie, len(u.movies))
	copy(out, u.movies)
	return out
}

func (u *Usecase) persist(userID model.UserID, movies []model.Movie) {
	if err := u.persistence.Put(listKey(userID), movies); err != nil {
		u.logger.Error("watchlist persist failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
	}
}

func listKey(userID model.UserID) string {
	return fmt.Sprintf("watched_%d", userID)
}
