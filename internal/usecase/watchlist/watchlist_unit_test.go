package usecase_watchlist

import (
	"context"
	"errors"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cinematch/core/internal/model"
	gateway_mocks "github.com/cinematch/core/internal/usecase/watchlist/mocks/watchlist/gateway"
	notifier_mocks "github.com/cinematch/core/internal/usecase/watchlist/mocks/watchlist/notifier"
	persistence_mocks "github.com/cinematch/core/internal/usecase/watchlist/mocks/watchlist/persistence"
)

type UsecaseWatchlistUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase     *Usecase
	gateway     *gateway_mocks.Gateway
	persistence *persistence_mocks.Persistence
	notifier    *notifier_mocks.Notifier
	ctx         context.Context
}

func initResources(t provider.T) *resources {
	gateway := gateway_mocks.NewGateway(t)
	persistence := persistence_mocks.NewPersistence(t)
	notifier := notifier_mocks.NewNotifier(t)
	usecase := New(gateway, persistence, notifier)

	return &resources{
		usecase:     usecase,
		gateway:     gateway,
		persistence: persistence,
		notifier:    notifier,
		ctx:         context.Background(),
	}
}

func validUser() *model.User {
	return &model.User{ID: 42, Email: "viewer@example.com"}
}

func movieWithID(id model.MovieID) model.Movie {
	return model.Movie{PlainID: id, Title: "Alien"}
}

func syncEmpty(r *resources, user *model.User) {
	r.persistence.On("Get", "watched_42", mock.Anything).
		Return(errors.New("not found")).Once()
	r.usecase.Sync(user)
}

func (s *UsecaseWatchlistUnitSuite) TestAdd(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		setupMocks func(r *resources)
		run        func(r *resources, user *model.User)
		contains   bool
		length     int
	}{
		{
			name: "Should add a movie and write the backing interaction",
			setupMocks: func(r *resources) {
				r.persistence.On("Put", "watched_42", mock.Anything).Return(nil).Once()
				r.gateway.On("UpsertInteraction", r.ctx, model.UserID(42), model.MovieID(7), mock.Anything, model.WatchlistRating).
					Return(nil).Once()
			},
			run: func(r *resources, user *model.User) {
				r.usecase.Add(r.ctx, user, movieWithID(7))
			},
			contains: true,
			length:   1,
		},
		{
			name: "Should keep the movie when the gateway write fails",
			setupMocks: func(r *resources) {
				r.persistence.On("Put", "watched_42", mock.Anything).Return(nil).Once()
				r.gateway.On("UpsertInteraction", r.ctx, model.UserID(42), model.MovieID(7), mock.Anything, model.WatchlistRating).
					Return(errors.New("backend down")).Once()
			},
			run: func(r *resources, user *model.User) {
				r.usecase.Add(r.ctx, user, movieWithID(7))
			},
			contains: true,
			length:   1,
		},
		{
			name: "Should ignore a duplicate add",
			setupMocks: func(r *resources) {
				r.persistence.On("Put", "watched_42", mock.Anything).Return(nil).Once()
				r.gateway.On("UpsertInteraction", r.ctx, model.UserID(42), model.MovieID(7), mock.Anything, model.WatchlistRating).
					Return(nil).Once()
			},
			run: func(r *resources, user *model.User) {
				r.usecase.Add(r.ctx, user, movieWithID(7))
				r.usecase.Add(r.ctx, user, movieWithID(7))
			},
			contains: true,
			length:   1,
		},
		{
			name:       "Should drop a movie without identity",
			setupMocks: func(r *resources) {},
			run: func(r *resources, user *model.User) {
				r.usecase.Add(r.ctx, user, model.Movie{Title: "no id"})
			},
			contains: false,
			length:   0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			user := validUser()
			syncEmpty(r, user)
			tc.setupMocks(r)

			tc.run(r, user)

			assert.Equal(t, tc.contains, r.usecase.Contains(movieWithID(7)))
			assert.Len(t, r.usecase.Movies(), tc.length)
			r.gateway.AssertExpectations(t)
			r.persistence.AssertExpectations(t)
		})
	}
}

func (s *UsecaseWatchlistUnitSuite) TestRemove(t provider.T) {
	t.Parallel()

	r := initResources(t)
	user := validUser()
	syncEmpty(r, user)

	r.persistence.On("Put", "watched_42", mock.Anything).Return(nil)
	r.gateway.On("UpsertInteraction", r.ctx, model.UserID(42), model.MovieID(7), mock.Anything, model.WatchlistRating).
		Return(nil).Once()
	r.gateway.On("DeleteInteraction", r.ctx, model.UserID(42), model.MovieID(7)).
		Return(nil).Once()

	r.usecase.Add(r.ctx, user, movieWithID(7))
	assert.True(t, r.usecase.Contains(movieWithID(7)))

	r.usecase.Remove(r.ctx, user, movieWithID(7))
	assert.False(t, r.usecase.Contains(movieWithID(7)))
	assert.Empty(t, r.usecase.Movies())

	// Removing again is a no-op: no second delete call.
	r.usecase.Remove(r.ctx, user, movieWithID(7))
	r.gateway.AssertExpectations(t)
}

func (s *UsecaseWatchlistUnitSuite) TestGuestAddSignalsAuth(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.notifier.On("AuthRequired").Once()

	r.usecase.Add(r.ctx, nil, movieWithID(7))

	assert.False(t, r.usecase.Contains(movieWithID(7)))
	r.notifier.AssertExpectations(t)
	r.gateway.AssertNotCalled(t, "UpsertInteraction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *UsecaseWatchlistUnitSuite) TestSync(t provider.T) {
	t.Parallel()

	t.Run("Should load the persisted list for the session", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		saved := []model.Movie{movieWithID(1), movieWithID(2)}

		r.persistence.On("Get", "watched_42", mock.Anything).
			Return(nil).
			Run(func(args mock.Arguments) {
				out := args.Get(1).(*[]model.Movie)
				*out = saved
			}).Once()

		r.usecase.Sync(validUser())

		assert.Len(t, r.usecase.Movies(), 2)
		assert.True(t, r.usecase.Contains(movieWithID(1)))
	})

	t.Run("Should clear the cache on logout", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		user := validUser()

		r.persistence.On("Get", "watched_42", mock.Anything).
			Return(nil).
			Run(func(args mock.Arguments) {
				out := args.Get(1).(*[]model.Movie)
				*out = []model.Movie{movieWithID(1)}
			}).Once()
		r.usecase.Sync(user)
		assert.NotEmpty(t, r.usecase.Movies())

		r.usecase.Sync(nil)
		assert.Empty(t, r.usecase.Movies())
	})
}

func (s *UsecaseWatchlistUnitSuite) TestMostRecentFirst(t provider.T) {
	t.Parallel()

	r := initResources(t)
	user := validUser()
	syncEmpty(r, user)

	r.persistence.On("Put", "watched_42", mock.Anything).Return(nil)
	r.gateway.On("UpsertInteraction", r.ctx, model.UserID(42), mock.Anything, mock.Anything, model.WatchlistRating).
		Return(nil)

	r.usecase.Add(r.ctx, user, movieWithID(1))
	r.usecase.Add(r.ctx, user, movieWithID(2))
	r.usecase.Add(r.ctx, user, movieWithID(3))

	movies := r.usecase.Movies()
	assert.Len(t, movies, 3)
	assert.Equal(t, model.MovieID(3), movies[0].PlainID)
	assert.Equal(t, model.MovieID(1), movies[2].PlainID)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseWatchlistUnitSuite))
}
