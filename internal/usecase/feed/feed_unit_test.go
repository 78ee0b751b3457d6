package usecase_feed

import (
	"context"
	"errors"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cinematch/core/internal/model"
	gateway_mocks "github.com/cinematch/core/internal/usecase/feed/mocks/feed/gateway"
	notifier_mocks "github.com/cinematch/core/internal/usecase/feed/mocks/feed/notifier"
	watchlister_mocks "github.com/cinematch/core/internal/usecase/feed/mocks/feed/watchlister"
)

type UsecaseFeedUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	gateway   *gateway_mocks.Gateway
	watchlist *watchlister_mocks.Watchlister
	notifier  *notifier_mocks.Notifier
	ctx       context.Context
}

func initResources(t provider.T) *resources {
	gateway := gateway_mocks.NewGateway(t)
	watchlist := watchlister_mocks.NewWatchlister(t)
	notifier := notifier_mocks.NewNotifier(t)
	usecase := New(gateway, watchlist, notifier, WithLimits(15, 10))

	return &resources{
		usecase:   usecase,
		gateway:   gateway,
		watchlist: watchlist,
		notifier:  notifier,
		ctx:       context.Background(),
	}
}

func catalogGenres() []model.Genre {
	return []model.Genre{
		{ID: 1, Name: "Action"},
		{ID: 2, Name: "Comedy"},
		{ID: 3, Name: "Drama"},
		{ID: 4, Name: "Horror"},
	}
}

func moviesFor(tag model.MovieID) []model.Movie {
	return []model.Movie{{PlainID: tag * 100, Title: "sample"}}
}

func rowNames(feed model.Feed) []string {
	names := make([]string, 0, len(feed.Rows))
	for _, row := range feed.Rows {
		names = append(names, row.Name)
	}
	return names
}

func (s *UsecaseFeedUnitSuite) TestBuildRowOrder(t provider.T) {
	t.Parallel()

	r := initResources(t)
	user := &model.User{ID: 42}
	selected := []int64{1, 2}

	r.gateway.On("Genres", mock.Anything).Return(catalogGenres(), nil).Once()
	r.gateway.On("PopularMovies", mock.Anything, 15).Return(moviesFor(9), nil).Once()
	r.gateway.On("Recommendations", mock.Anything, model.UserID(42), selected).Return(moviesFor(8), nil).Once()
	for _, g := range catalogGenres() {
		r.gateway.On("MoviesByGenre", mock.Anything, g.ID, 10).Return(moviesFor(model.MovieID(g.ID)), nil).Once()
	}
	r.watchlist.On("Movies").Return(moviesFor(7)).Once()
	r.notifier.On("FeedReady", uint64(1)).Once()

	feed, err := r.usecase.Build(r.ctx, user, selected)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), feed.Generation)
	assert.Equal(t,
		[]string{"Recommended", "Watchlist", "Popular", "Action", "Comedy", "Drama", "Horror"},
		rowNames(feed))

	// Preferred rows carry the selection, exploratory the rest, both in
	// catalog order.
	assert.Equal(t, model.RowPreferred, feed.Rows[3].Kind)
	assert.Equal(t, model.RowPreferred, feed.Rows[4].Kind)
	assert.Equal(t, model.RowExploratory, feed.Rows[5].Kind)
	assert.Equal(t, model.RowExploratory, feed.Rows[6].Kind)
	r.gateway.AssertExpectations(t)
}

func (s *UsecaseFeedUnitSuite) TestBuildDegradations(t provider.T) {
	t.Parallel()

	t.Run("Should drop a failed genre row and keep the rest", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("Genres", mock.Anything).Return(catalogGenres(), nil).Once()
		r.gateway.On("PopularMovies", mock.Anything, 15).Return(moviesFor(9), nil).Once()
		r.gateway.On("MoviesByGenre", mock.Anything, int64(1), 10).Return(nil, errors.New("timeout")).Once()
		for _, g := range catalogGenres()[1:] {
			r.gateway.On("MoviesByGenre", mock.Anything, g.ID, 10).Return(moviesFor(model.MovieID(g.ID)), nil).Once()
		}
		r.watchlist.On("Movies").Return(nil).Once()
		r.notifier.On("FeedReady", uint64(1)).Once()

		feed, err := r.usecase.Build(r.ctx, nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Popular", "Comedy", "Drama", "Horror"}, rowNames(feed))
	})

	t.Run("Should fail the build when the popular fetch fails", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		r.gateway.On("Genres", mock.Anything).Return(catalogGenres(), nil).Once()
		r.gateway.On("PopularMovies", mock.Anything, 15).Return(nil, errors.New("backend down")).Once()
		for _, g := range catalogGenres() {
			r.gateway.On("MoviesByGenre", mock.Anything, g.ID, 10).Return(nil, nil).Maybe()
		}
		r.notifier.On("FeedFailed", mock.AnythingOfType("string")).Once()

		_, err := r.usecase.Build(r.ctx, nil, nil)

		assert.ErrorIs(t, err, ErrFailedToLoadPopular)
		assert.Zero(t, r.usecase.Current().Generation)
	})

	t.Run("Should keep the feed when recommendations fail", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		user := &model.User{ID: 42}

		r.gateway.On("Genres", mock.Anything).Return(catalogGenres(), nil).Once()
		r.gateway.On("PopularMovies", mock.Anything, 15).Return(moviesFor(9), nil).Once()
		r.gateway.On("Recommendations", mock.Anything, model.UserID(42), mock.Anything).
			Return(nil, errors.New("recommender cold")).Once()
		for _, g := range catalogGenres() {
			r.gateway.On("MoviesByGenre", mock.Anything, g.ID, 10).Return(nil, nil).Once()
		}
		r.watchlist.On("Movies").Return(nil).Once()
		r.notifier.On("FeedReady", uint64(1)).Once()

		feed, err := r.usecase.Build(r.ctx, user, nil)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Popular"}, rowNames(feed))
	})
}

func (s *UsecaseFeedUnitSuite) TestGuestSkipsRecommendations(t provider.T) {
	t.Parallel()

	r := initResources(t)

	r.gateway.On("Genres", mock.Anything).Return(catalogGenres(), nil).Once()
	r.gateway.On("PopularMovies", mock.Anything, 15).Return(moviesFor(9), nil).Once()
	for _, g := range catalogGenres() {
		r.gateway.On("MoviesByGenre", mock.Anything, g.ID, 10).Return(nil, nil).Once()
	}
	r.watchlist.On("Movies").Return(nil).Once()
	r.notifier.On("FeedReady", uint64(1)).Once()

	_, err := r.usecase.Build(r.ctx, nil, nil)

	assert.NoError(t, err)
	r.gateway.AssertNotCalled(t, "Recommendations", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UsecaseFeedUnitSuite) TestStaleBuildNeverPublishes(t provider.T) {
	t.Parallel()

	r := initResources(t)

	r.gateway.On("Genres", mock.Anything).Return(catalogGenres(), nil).Once()
	r.gateway.On("PopularMovies", mock.Anything, 15).Return(moviesFor(9), nil)
	r.gateway.On("MoviesByGenre", mock.Anything, mock.Anything, 10).Return(nil, nil)
	r.watchlist.On("Movies").Return(nil)
	r.notifier.On("FeedReady", mock.Anything)

	// Two sequential builds: the second publishes a newer generation.
	_, err := r.usecase.Build(r.ctx, nil, nil)
	assert.NoError(t, err)
	second, err := r.usecase.Build(r.ctx, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), second.Generation)
	assert.Equal(t, uint64(2), r.usecase.Current().Generation)
}

func (s *UsecaseFeedUnitSuite) TestGenresCachedOnce(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.gateway.On("Genres", r.ctx).Return(catalogGenres(), nil).Once()

	first, err := r.usecase.Genres(r.ctx)
	assert.NoError(t, err)
	second, err := r.usecase.Genres(r.ctx)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	r.gateway.AssertExpectations(t)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseFeedUnitSuite))
}
