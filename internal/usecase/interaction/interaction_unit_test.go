package usecase_interaction

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cinematch/core/internal/model"
	gateway_mocks "github.com/cinematch/core/internal/usecase/interaction/mocks/interaction/gateway"
	notifier_mocks "github.com/cinematch/core/internal/usecase/interaction/mocks/interaction/notifier"
)

type UsecaseInteractionUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	gateway  *gateway_mocks.Gateway
	notifier *notifier_mocks.Notifier
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	gateway := gateway_mocks.NewGateway(t)
	notifier := notifier_mocks.NewNotifier(t)
	usecase := New(gateway, notifier)

	return &resources{
		usecase:  usecase,
		gateway:  gateway,
		notifier: notifier,
		ctx:      context.Background(),
	}
}

func validUser() *model.User {
	return &model.User{ID: 42, Email: "viewer@example.com"}
}

func movieWithID(id model.MovieID) model.Movie {
	return model.Movie{PlainID: id, Title: "Blade Runner"}
}

func (s *UsecaseInteractionUnitSuite) TestToggleSemantics(t provider.T) {
	t.Parallel()

	r := initResources(t)
	user := validUser()
	movie := movieWithID(7)

	r.gateway.On("UpsertInteraction", mock.Anything, user.ID, model.MovieID(7), mock.Anything, mock.Anything).
		Return(nil)

	r.usecase.SetLiked(user, movie, true)
	r.usecase.Flush()
	st := r.usecase.Current(user.ID, movie)
	assert.NotNil(t, st.Liked)
	assert.True(t, *st.Liked)

	// Repeating the current value clears the opinion.
	r.usecase.SetLiked(user, movie, true)
	r.usecase.Flush()
	st = r.usecase.Current(user.ID, movie)
	assert.Nil(t, st.Liked)

	r.usecase.SetLiked(user, movie, true)
	r.usecase.Flush()
	st = r.usecase.Current(user.ID, movie)
	assert.NotNil(t, st.Liked)
	assert.True(t, *st.Liked)

	// Dislike replaces a like outright.
	r.usecase.SetLiked(user, movie, false)
	r.usecase.Flush()
	st = r.usecase.Current(user.ID, movie)
	assert.NotNil(t, st.Liked)
	assert.False(t, *st.Liked)
}

func (s *UsecaseInteractionUnitSuite) TestRatingClamp(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		rating   int
		expected int
	}{
		{name: "Should keep in-range rating", rating: 3, expected: 3},
		{name: "Should clamp rating above the scale", rating: 9, expected: 5},
		{name: "Should clamp zero to the minimum", rating: 0, expected: 1},
		{name: "Should clamp negative to the minimum", rating: -4, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			user := validUser()
			movie := movieWithID(11)

			r.gateway.On("UpsertInteraction", mock.Anything, user.ID, model.MovieID(11), mock.Anything, tc.expected).
				Return(nil).Once()

			r.usecase.SetRating(user, movie, tc.rating)
			r.usecase.Flush()

			assert.Equal(t, tc.expected, r.usecase.Current(user.ID, movie).Rating)
			r.gateway.AssertExpectations(t)
		})
	}
}

func (s *UsecaseInteractionUnitSuite) TestLikedPreservesRating(t provider.T) {
	t.Parallel()

	r := initResources(t)
	user := validUser()
	movie := movieWithID(3)

	r.gateway.On("UpsertInteraction", mock.Anything, user.ID, model.MovieID(3), mock.Anything, 4).
		Return(nil)

	r.usecase.SetRating(user, movie, 4)
	r.usecase.Flush()
	r.usecase.SetLiked(user, movie, true)
	r.usecase.Flush()

	st := r.usecase.Current(user.ID, movie)
	assert.NotNil(t, st.Liked)
	assert.True(t, *st.Liked)
	assert.Equal(t, 4, st.Rating)
}

func (s *UsecaseInteractionUnitSuite) TestGuestTriggersAuthSignal(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		apply func(r *resources, movie model.Movie)
	}{
		{
			name: "Should signal on guest like",
			apply: func(r *resources, movie model.Movie) {
				r.usecase.SetLiked(nil, movie, true)
			},
		},
		{
			name: "Should signal on guest rating",
			apply: func(r *resources, movie model.Movie) {
				r.usecase.SetRating(nil, movie, 5)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			movie := movieWithID(5)

			r.notifier.On("AuthRequired").Once()

			tc.apply(r, movie)
			r.usecase.Flush()

			// No optimistic state and no network traffic for guests.
			assert.Equal(t, State{}, r.usecase.Current(model.EmptyUserID, movie))
			r.notifier.AssertExpectations(t)
			r.gateway.AssertNotCalled(t, "UpsertInteraction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func (s *UsecaseInteractionUnitSuite) TestLastIntentWins(t provider.T) {
	t.Parallel()

	r := initResources(t)
	user := validUser()
	movie := movieWithID(9)

	var (
		sentMu sync.Mutex
		sent   []model.Liked
	)
	r.gateway.On("UpsertInteraction", mock.Anything, user.ID, model.MovieID(9), mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			sentMu.Lock()
			defer sentMu.Unlock()
			sent = append(sent, args.Get(3).(model.Liked))
		})

	// A burst of flips without waiting for settlement.
	r.usecase.SetLiked(user, movie, true)
	r.usecase.SetLiked(user, movie, false)
	r.usecase.SetLiked(user, movie, true)
	r.usecase.Flush()

	st := r.usecase.Current(user.ID, movie)
	assert.NotNil(t, st.Liked)
	assert.True(t, *st.Liked)

	sentMu.Lock()
	defer sentMu.Unlock()
	assert.NotEmpty(t, sent)
	last := sent[len(sent)-1]
	assert.NotNil(t, last)
	assert.True(t, *last)
}

func (s *UsecaseInteractionUnitSuite) TestLoad(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		setupMocks func(r *resources)
		expected   State
	}{
		{
			name: "Should adopt the matching remote record",
			setupMocks: func(r *resources) {
				r.gateway.On("Interactions", r.ctx, model.UserID(42)).
					Return([]model.Interaction{
						{UserID: 42, MovieID: 1, Liked: model.LikedValue(false), Rating: 2},
						{UserID: 42, MovieID: 7, Liked: model.LikedValue(true), Rating: 4},
					}, nil).Once()
			},
			expected: State{Liked: model.LikedValue(true), Rating: 4},
		},
		{
			name: "Should stay zero when no record matches",
			setupMocks: func(r *resources) {
				r.gateway.On("Interactions", r.ctx, model.UserID(42)).
					Return([]model.Interaction{}, nil).Once()
			},
			expected: State{},
		},
		{
			name: "Should keep prior state on gateway failure",
			setupMocks: func(r *resources) {
				r.gateway.On("Interactions", r.ctx, model.UserID(42)).
					Return(nil, errors.New("backend down")).Once()
			},
			expected: State{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got := r.usecase.Load(r.ctx, 42, 7)

			if tc.expected.Liked == nil {
				assert.Nil(t, got.Liked)
			} else {
				assert.NotNil(t, got.Liked)
				assert.Equal(t, *tc.expected.Liked, *got.Liked)
			}
			assert.Equal(t, tc.expected.Rating, got.Rating)
			r.gateway.AssertExpectations(t)
		})
	}
}

func (s *UsecaseInteractionUnitSuite) TestIntentSupersedesReconciliation(t provider.T) {
	t.Parallel()

	r := initResources(t)
	user := validUser()
	movie := movieWithID(7)

	r.gateway.On("UpsertInteraction", mock.Anything, user.ID, model.MovieID(7), mock.Anything, mock.Anything).
		Return(nil)
	r.gateway.On("Interactions", r.ctx, user.ID).
		Return([]model.Interaction{
			{UserID: user.ID, MovieID: 7, Liked: model.LikedValue(false), Rating: 1},
		}, nil).
		Run(func(mock.Arguments) {
			// A local flip lands while the fetch is in flight.
			r.usecase.SetLiked(user, movie, true)
		}).Once()

	got := r.usecase.Load(r.ctx, user.ID, 7)
	r.usecase.Flush()

	assert.NotNil(t, got.Liked)
	assert.True(t, *got.Liked)

	st := r.usecase.Current(user.ID, movie)
	assert.NotNil(t, st.Liked)
	assert.True(t, *st.Liked)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseInteractionUnitSuite))
}
