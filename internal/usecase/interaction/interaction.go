package usecase_interaction

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/cinematch/core/internal/model"
)

var ErrFailedToLoadInteractions = errors.New("failed to load interactions")

type Gateway interface {
	Interactions(ctx context.Context, userID model.UserID) ([]model.Interaction, error)
	UpsertInteraction(ctx context.Context, userID model.UserID, movieID model.MovieID, liked model.Liked, rating int) error
}

// Notifier decouples the engine from whatever prompts the user to log
// in. The call must not block.
type Notifier interface {
	AuthRequired()
}

// State is the in-memory like/dislike/rating view for one (user, movie)
// pair.
type State struct {
	Liked  model.Liked
	Rating int
}

type pairKey struct {
	user  model.UserID
	movie model.MovieID
}

// entry tracks local intent per pair. gen counts user intents, sentGen
// the newest intent already handed to the gateway. sendMu serializes
// gateway writes for the pair so settlements cannot reorder.
type entry struct {
	state   State
	gen     uint64
	sentGen uint64
	sendMu  sync.Mutex
}

// Usecase owns optimistic like/dislike/rating state and reconciles it
// against the remote interaction records.
type Usecase struct {
	gateway  Gateway
	notifier Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	entries map[pairKey]*entry
	writes  sync.WaitGroup
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(gateway Gateway, notifier Notifier, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		gateway:  gateway,
		notifier: notifier,
		logger:   slog.Default(),
		entries:  make(map[pairKey]*entry),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Load fetches the user's interactions and adopts the record matching
// movieID. Network failure is logged and the prior in-memory state is
// returned untouched. A local intent issued while the fetch was in
// flight supersedes the fetched record.
func (u *Usecase) Load(ctx context.Context, userID model.UserID, movieID model.MovieID) State {
	key := pairKey{user: userID, movie: movieID}

	u.mu.Lock()
	e := u.entry(key)
	genAtStart := e.gen
	prior := e.state
	u.mu.Unlock()

	interactions, err := u.gateway.Interactions(ctx, userID)
	if err != nil {
		u.logger.Error("interaction load failed, keeping prior state",
			slog.Int64("user_id", userID),
			slog.Int64("movie_id", movieID),
			slog.String("error", err.Error()))
		return prior
	}

	fetched := State{}
	for _, it := range interactions {
		if it.MovieID == movieID {
			fetched = State{Liked: it.Liked, Rating: it.Rating}
			break
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if e.gen != genAtStart {
		// User intent arrived mid-reconciliation. Intent wins.
		return e.state
	}
	e.state = fetched
	return fetched
}

// SetLiked applies toggle semantics: requesting the current value clears
// the opinion, anything else replaces it. The local state mutates before
// the write-through settles, and the write always carries the live
// rating because the remote record is a single upsert per pair.
func (u *Usecase) SetLiked(user *model.User, movie model.Movie, value bool) {
	if user == nil {
		u.notifier.AuthRequired()
		return
	}
	movieID, ok := model.MovieKey(movie)
	if !ok {
		return
	}
	key := pairKey{user: user.ID, movie: movieID}

	u.mu.Lock()
	e := u.entry(key)
	if model.LikedEqual(e.state.Liked, model.LikedValue(value)) {
		e.state.Liked = nil
	} else {
		e.state.Liked = model.LikedValue(value)
	}
	e.gen++
	snapGen := e.gen
	u.mu.Unlock()

	u.dispatch(key, e, snapGen)
}

// SetRating clamps to 1..5 and writes through with the live liked value.
func (u *Usecase) SetRating(user *model.User, movie model.Movie, rating int) {
	if user == nil {
		u.notifier.AuthRequired()
		return
	}
	movieID, ok := model.MovieKey(movie)
	if !ok {
		return
	}
	key := pairKey{user: user.ID, movie: movieID}

	u.mu.Lock()
	e := u.entry(key)
	e.state.Rating = model.ClampRating(rating)
	e.gen++
	snapGen := e.gen
	u.mu.Unlock()

	u.dispatch(key, e, snapGen)
}

// Current returns the in-memory state for the pair, zero when unknown.
func (u *Usecase) Current(userID model.UserID, movie model.Movie) State {
	movieID, ok := model.MovieKey(movie)
	if !ok {
		return State{}
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if e, found := u.entries[pairKey{user: userID, movie: movieID}]; found {
		return e.state
	}
	return State{}
}

// Flush blocks until every queued write-through has settled. Used on
// shutdown and by tests.
func (u *Usecase) Flush() {
	u.writes.Wait()
}

func (u *Usecase) entry(key pairKey) *entry {
	e, found := u.entries[key]
	if !found {
		e = &entry{}
		u.entries[key] = e
	}
	return e
}

// dispatch hands the current intent to the gateway off the caller's
// goroutine. Writes for one pair serialize on sendMu and every write
// re-reads the newest state, so a stale settlement can never overwrite
// a later intent: last intent wins, not last settled.
func (u *Usecase) dispatch(key pairKey, e *entry, snapGen uint64) {
	u.writes.Add(1)
	go func() {
		defer u.writes.Done()

		e.sendMu.Lock()
		defer e.sendMu.Unlock()

		u.mu.Lock()
		if e.sentGen >= snapGen {
			// A newer intent already carried this state out.
			u.mu.Unlock()
			return
		}
		e.sentGen = e.gen
		st := e.state
		u.mu.Unlock()

		// Deliberately not tied to the caller: navigation must not
		// cancel an in-flight interaction write.
		if err := u.gateway.UpsertInteraction(context.Background(), key.user, key.movie, st.Liked, st.Rating); err != nil {
			u.logger.Error("interaction write-through failed",
				slog.Int64("user_id", key.user),
				slog.Int64("movie_id", key.movie),
				slog.String("error", err.Error()))
		}
	}()
}
