package usecase_movie

import (
	"context"
	"errors"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cinematch/core/internal/model"
	gateway_mocks "github.com/cinematch/core/internal/usecase/movie/mocks/movie/gateway"
)

type UsecaseMovieUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	gateway *gateway_mocks.Gateway
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	gateway := gateway_mocks.NewGateway(t)
	usecase := New(gateway)

	return &resources{
		usecase: usecase,
		gateway: gateway,
		ctx:     context.Background(),
	}
}

func (s *UsecaseMovieUnitSuite) TestDetail(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
		expected      Detail
	}{
		{
			name: "Should load movie and genres together",
			setupMocks: func(r *resources) {
				r.gateway.On("Movie", mock.Anything, model.MovieID(7)).
					Return(model.Movie{PlainID: 7, Title: "Heat"}, nil).Once()
				r.gateway.On("MovieGenres", mock.Anything, model.MovieID(7)).
					Return([]model.Genre{{ID: 1, Name: "Crime"}}, nil).Once()
			},
			expected: Detail{
				Movie:  model.Movie{PlainID: 7, Title: "Heat"},
				Genres: []model.Genre{{ID: 1, Name: "Crime"}},
			},
		},
		{
			name: "Should degrade to empty genres when the tag fetch fails",
			setupMocks: func(r *resources) {
				r.gateway.On("Movie", mock.Anything, model.MovieID(7)).
					Return(model.Movie{PlainID: 7, Title: "Heat"}, nil).Once()
				r.gateway.On("MovieGenres", mock.Anything, model.MovieID(7)).
					Return(nil, errors.New("timeout")).Once()
			},
			expected: Detail{
				Movie: model.Movie{PlainID: 7, Title: "Heat"},
			},
		},
		{
			name: "Should fail when the movie fetch fails",
			setupMocks: func(r *resources) {
				r.gateway.On("Movie", mock.Anything, model.MovieID(7)).
					Return(model.Movie{}, errors.New("backend down")).Once()
				r.gateway.On("MovieGenres", mock.Anything, model.MovieID(7)).
					Return(nil, nil).Maybe()
			},
			expectError:   true,
			expectedError: ErrFailedToLoadMovie,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			detail, err := r.usecase.Detail(r.ctx, 7)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, detail)
			}
			r.gateway.AssertExpectations(t)
		})
	}
}

func (s *UsecaseMovieUnitSuite) TestDetailRejectsEmptyID(t provider.T) {
	t.Parallel()

	r := initResources(t)

	_, err := r.usecase.Detail(r.ctx, model.EmptyMovieID)

	assert.ErrorIs(t, err, ErrMovieNotFound)
	r.gateway.AssertNotCalled(t, "Movie", mock.Anything, mock.Anything)
}

func (s *UsecaseMovieUnitSuite) TestSearch(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		expectError bool
		expectedLen int
	}{
		{
			name: "Should return catalog matches",
			setupMocks: func(r *resources) {
				r.gateway.On("SearchMovies", mock.Anything, "alien", 20).
					Return([]model.Movie{{PlainID: 1}, {PlainID: 2}}, nil).Once()
			},
			expectedLen: 2,
		},
		{
			name: "Should surface gateway failure",
			setupMocks: func(r *resources) {
				r.gateway.On("SearchMovies", mock.Anything, "alien", 20).
					Return(nil, errors.New("backend down")).Once()
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			movies, err := r.usecase.Search(r.ctx, "alien", 20)

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, movies, tc.expectedLen)
			}
			r.gateway.AssertExpectations(t)
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMovieUnitSuite))
}
