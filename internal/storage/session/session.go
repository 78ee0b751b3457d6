package storage_session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cinematch/core/internal/model"
	service_signal "github.com/cinematch/core/internal/service/signal"
)

var (
	ErrLoginFailed    = errors.New("failed to log in")
	ErrRegisterFailed = errors.New("failed to register")
	ErrGenreSelection = errors.New("genre selection must contain 1 to 3 genres")
)

const (
	currentUserKey    = "currentUser"
	selectedGenresKey = "genres_selected"

	minSelectedGenres = 1
	maxSelectedGenres = 3
)

type Persistence interface {
	Put(key string, value any) error
	Get(key string, out any) error
	Delete(key string) error
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (model.User, error)
	Register(ctx context.Context, fullName, email, password string, genreIDs []int64) (model.User, error)
	SavePreferences(ctx context.Context, userID model.UserID, genreIDs []int64) error
}

type Notifier interface {
	Publish(s service_signal.Signal)
}

// Store is the single owner of the active user session and the selected
// genre set. UI pieces subscribe instead of polling shared state.
type Store struct {
	mu       sync.RWMutex
	user     *model.User
	selected []int64

	subMu sync.RWMutex
	subs  []func(*model.User)

	persistence Persistence
	auth        Authenticator
	notifier    Notifier
	logger      *slog.Logger
}

type StoreOption func(*Store)

func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

func New(
	persistence Persistence,
	auth Authenticator,
	notifier Notifier,
	opts ...StoreOption,
) *Store {
	s := &Store{
		persistence: persistence,
		auth:        auth,
		notifier:    notifier,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads the persisted session on startup. A missing record just
// means a fresh guest session.
func (s *Store) Restore() {
	var user model.User
	if err := s.persistence.Get(currentUserKey, &user); err == nil {
		s.mu.Lock()
		s.user = &user
		s.mu.Unlock()
	}

	var selected []int64
	if err := s.persistence.Get(selectedGenresKey, &selected); err == nil {
		s.mu.Lock()
		s.selected = selected
		s.mu.Unlock()
	}
}

// Current returns a copy of the active user, nil for guests.
func (s *Store) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) SelectedGenres() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int64, len(s.selected))
	copy(out, s.selected)
	return out
}

func (s *Store) Login(ctx context.Context, email, password string) (model.User, error) {
	user, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	// Server-side preferences win over whatever the guest picked.
	s.establish(user, user.SelectedGenres)
	return user, nil
}

func (s *Store) Register(ctx context.Context, fullName, email, password string, genreIDs []int64) (model.User, error) {
	user, err := s.auth.Register(ctx, fullName, email, password, genreIDs)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrRegisterFailed, err)
	}

	s.establish(user, genreIDs)
	return user, nil
}

func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.persistence.Delete(currentUserKey); err != nil {
		s.logger.Error("failed to drop persisted session", slog.String("error", err.Error()))
	}

	s.notifier.Publish(service_signal.Signal{Kind: service_signal.KindSessionChanged})
	s.fanout(nil)
}

// SaveSelection validates and persists the onboarding genre choice. The
// remote preference write is best-effort, a failure keeps the local
// selection and is reconciled on the next save.
func (s *Store) SaveSelection(ctx context.Context, genreIDs []int64) error {
	if len(genreIDs) < minSelectedGenres || len(genreIDs) > maxSelectedGenres {
		return ErrGenreSelection
	}

	s.mu.Lock()
	s.selected = append([]int64(nil), genreIDs...)
	user := s.user
	s.mu.Unlock()

	if err := s.persistence.Put(selectedGenresKey, genreIDs); err != nil {
		s.logger.Error("failed to persist genre selection", slog.String("error", err.Error()))
	}

	if user != nil {
		if err := s.auth.SavePreferences(ctx, user.ID, genreIDs); err != nil {
			s.logger.Error("remote preference save failed", slog.String("error", err.Error()))
		}
	}
	return nil
}

// ResetSelection tells the presentation layer to re-run onboarding.
func (s *Store) ResetSelection() {
	s.notifier.Publish(service_signal.Signal{Kind: service_signal.KindSelectionReset})
}

// Subscribe registers a callback fired on every session change. The
// callback receives nil on logout.
func (s *Store) Subscribe(fn func(*model.User)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) establish(user model.User, genreIDs []int64) {
	s.mu.Lock()
	u := user
	s.user = &u
	if len(genreIDs) > 0 {
		s.selected = append([]int64(nil), genreIDs...)
	}
	s.mu.Unlock()

	if err := s.persistence.Put(currentUserKey, user); err != nil {
		s.logger.Error("failed to persist session", slog.String("error", err.Error()))
	}
	if len(genreIDs) > 0 {
		if err := s.persistence.Put(selectedGenresKey, genreIDs); err != nil {
			s.logger.Error("failed to persist genre selection", slog.String("error", err.Error()))
		}
	}

	s.notifier.Publish(service_signal.Signal{
		Kind:    service_signal.KindSessionChanged,
		Payload: user.ID,
	})
	s.fanout(&user)
}

func (s *Store) fanout(user *model.User) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()

	for _, fn := range s.subs {
		fn(user)
	}
}
