package http_watchlist

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	http_common "github.com/cinematch/core/internal/delivery/http/common"
	http_session_middleware "github.com/cinematch/core/internal/delivery/http/middleware/session"
	"github.com/cinematch/core/internal/model"
	usecase_watchlist "github.com/cinematch/core/internal/usecase/watchlist"
)

type Controller struct {
	watchlist  *usecase_watchlist.Usecase
	middleware *http_session_middleware.Middleware
}

func New(watchlist *usecase_watchlist.Usecase, middleware *http_session_middleware.Middleware) *Controller {
	return &Controller{
		watchlist:  watchlist,
		middleware: middleware,
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	watchlist := router.Group("/watchlist")
	watchlist.Use(c.middleware.ResolveUser())
	watchlist.GET("", c.list)
	watchlist.POST("", c.add)
	watchlist.DELETE("/:movie_id", c.remove)
}

type WatchlistResponseDTO struct {
	Movies []model.Movie `json:"movies"`
}

// @Summary Current watch-list, newest first
// @Tags Watchlist operations
// @Produce json
// @Success 200 {object} WatchlistResponseDTO
// @Router /watchlist [get]
func (c *Controller) list(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, WatchlistResponseDTO{Movies: c.watchlist.Movies()})
}

// @Summary Add a movie to the watch-list
// @Tags Watchlist operations
// @Accept json
// @Param request body model.Movie true "Movie record as served by the catalog"
// @Success 202
// @Failure 400 {object} http_common.ErrorResponse "Malformed request or movie without an identifier"
// @Router /watchlist [post]
func (c *Controller) add(ctx *gin.Context) {
	var movie model.Movie
	if err := ctx.ShouldBindJSON(&movie); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid request format"})
		return
	}
	if _, ok := model.MovieKey(movie); !ok {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "movie has no identifier"})
		return
	}

	c.watchlist.Add(ctx.Request.Context(), http_session_middleware.UserFrom(ctx), movie)
	ctx.Status(http.StatusAccepted)
}

// @Summary Remove a movie from the watch-list
// @Tags Watchlist operations
// @Param movie_id path int true "Movie identifier"
// @Success 202
// @Failure 400 {object} http_common.ErrorResponse "Invalid movie id"
// @Router /watchlist/{movie_id} [delete]
func (c *Controller) remove(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("movie_id"), 10, 64)
	if err != nil || id == model.EmptyMovieID {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid movie id"})
		return
	}

	c.watchlist.Remove(ctx.Request.Context(), http_session_middleware.UserFrom(ctx), model.Movie{PlainID: id})
	ctx.Status(http.StatusAccepted)
}
