package http_movie

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	http_common "github.com/cinematch/core/internal/delivery/http/common"
	http_session_middleware "github.com/cinematch/core/internal/delivery/http/middleware/session"
	"github.com/cinematch/core/internal/model"
	usecase_interaction "github.com/cinematch/core/internal/usecase/interaction"
	usecase_movie "github.com/cinematch/core/internal/usecase/movie"
)

const searchLimit = 20

type Controller struct {
	movies       *usecase_movie.Usecase
	interactions *usecase_interaction.Usecase
	middleware   *http_session_middleware.Middleware
	logger       *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	movies *usecase_movie.Usecase,
	interactions *usecase_interaction.Usecase,
	middleware *http_session_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		movies:       movies,
		interactions: interactions,
		middleware:   middleware,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.Use(c.middleware.ResolveUser())
	movies.GET("/search", c.search)
	movies.GET("/:movie_id", c.detail)
	movies.POST("/:movie_id/liked", c.setLiked)
	movies.POST("/:movie_id/rating", c.setRating)
}

type DetailResponseDTO struct {
	Movie  model.Movie   `json:"movie"`
	Genres []model.Genre `json:"genres"`
	Liked  *bool         `json:"liked"`
	Rating int           `json:"rating"`
}

type LikedRequestDTO struct {
	Value *bool `json:"value" binding:"required"`
}

type RatingRequestDTO struct {
	Rating int `json:"rating" binding:"required"`
}

// @Summary Movie detail with genres and the caller's interaction state
// @Tags Movie operations
// @Produce json
// @Param movie_id path int true "Movie identifier"
// @Success 200 {object} DetailResponseDTO
// @Failure 404 {object} http_common.ErrorResponse "Unknown movie"
// @Failure 502 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /movies/{movie_id} [get]
func (c *Controller) detail(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}

	detail, err := c.movies.Detail(ctx.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, usecase_movie.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "movie not found"})
			return
		}
		c.logger.Error("movie detail load failed",
			slog.Int64("movie_id", movieID),
			slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{Message: "failed to load movie"})
		return
	}

	resp := DetailResponseDTO{
		Movie:  detail.Movie,
		Genres: detail.Genres,
	}
	if user := http_session_middleware.UserFrom(ctx); user != nil {
		state := c.interactions.Load(ctx.Request.Context(), user.ID, movieID)
		resp.Liked = state.Liked
		resp.Rating = state.Rating
	}
	ctx.JSON(http.StatusOK, resp)
}

// @Summary Toggle like/dislike for the movie
// @Tags Movie operations
// @Accept json
// @Param movie_id path int true "Movie identifier"
// @Param request body LikedRequestDTO true "true likes, false dislikes; repeating the current value clears it"
// @Success 202
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Router /movies/{movie_id}/liked [post]
func (c *Controller) setLiked(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}
	var req LikedRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid request format"})
		return
	}

	// A guest call is accepted: the engine answers with the
	// auth-required signal instead of an HTTP error.
	c.interactions.SetLiked(http_session_middleware.UserFrom(ctx), model.Movie{PlainID: movieID}, *req.Value)
	ctx.Status(http.StatusAccepted)
}

// @Summary Rate the movie on the 1..5 scale
// @Tags Movie operations
// @Accept json
// @Param movie_id path int true "Movie identifier"
// @Param request body RatingRequestDTO true "Star rating"
// @Success 202
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Router /movies/{movie_id}/rating [post]
func (c *Controller) setRating(ctx *gin.Context) {
	movieID, ok := c.movieID(ctx)
	if !ok {
		return
	}
	var req RatingRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid request format"})
		return
	}

	c.interactions.SetRating(http_session_middleware.UserFrom(ctx), model.Movie{PlainID: movieID}, req.Rating)
	ctx.Status(http.StatusAccepted)
}

// @Summary Search the catalog by title
// @Tags Movie operations
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} model.Movie
// @Failure 502 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /movies/search [get]
func (c *Controller) search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "missing search term"})
		return
	}

	movies, err := c.movies.Search(ctx.Request.Context(), query, searchLimit)
	if err != nil {
		c.logger.Error("movie search failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{Message: "search failed"})
		return
	}
	ctx.JSON(http.StatusOK, movies)
}

func (c *Controller) movieID(ctx *gin.Context) (model.MovieID, bool) {
	id, err := strconv.ParseInt(ctx.Param("movie_id"), 10, 64)
	if err != nil || id == model.EmptyMovieID {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid movie id"})
		return model.EmptyMovieID, false
	}
	return id, true
}
