package http_home

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	http_common "github.com/cinematch/core/internal/delivery/http/common"
	http_session_middleware "github.com/cinematch/core/internal/delivery/http/middleware/session"
	"github.com/cinematch/core/internal/model"
	service_hero "github.com/cinematch/core/internal/service/hero"
	storage_session "github.com/cinematch/core/internal/storage/session"
	usecase_feed "github.com/cinematch/core/internal/usecase/feed"
)

const returnFlagTTL = time.Hour

type ReturnFlagCache interface {
	MarkReturnFromDetail(token string, ttl time.Duration) error
	TakeReturnFromDetail(token string) (bool, error)
}

// Controller drives the home view lifecycle: feed builds on entry, hero
// rotation while the view is mounted, teardown on leave.
type Controller struct {
	feed    *usecase_feed.Usecase
	hero    *service_hero.Scheduler
	session *storage_session.Store
	flags   ReturnFlagCache
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	feed *usecase_feed.Usecase,
	hero *service_hero.Scheduler,
	session *storage_session.Store,
	flags ReturnFlagCache,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		feed:    feed,
		hero:    hero,
		session: session,
		flags:   flags,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	home := router.Group("/home")
	home.POST("/enter", c.enter)
	home.POST("/leave", c.leave)
	home.GET("/feed", c.currentFeed)
	home.GET("/genres", c.genres)
	home.GET("/hero", c.heroSlot)
	home.POST("/hero/select", c.heroSelect)
	home.POST("/return-from-detail", c.markReturn)
}

type EnterResponseDTO struct {
	Feed           model.Feed `json:"feed"`
	SkipOnboarding bool       `json:"skip_onboarding"`
}

type HeroResponseDTO struct {
	Index int          `json:"index"`
	Movie *model.Movie `json:"movie,omitempty"`
}

type HeroSelectRequestDTO struct {
	Index int `json:"index"`
}

// @Summary Enter the home view: build the feed and start hero rotation
// @Tags Home operations
// @Produce json
// @Success 200 {object} EnterResponseDTO
// @Failure 502 {object} http_common.ErrorResponse "Load-bearing popular fetch failed"
// @Router /home/enter [post]
func (c *Controller) enter(ctx *gin.Context) {
	skip := false
	if token := ctx.GetHeader(http_session_middleware.TokenHeader); token != "" {
		var err error
		if skip, err = c.flags.TakeReturnFromDetail(token); err != nil {
			c.logger.Error("return flag read failed", slog.String("error", err.Error()))
			skip = false
		}
	}

	feed, err := c.feed.Build(ctx.Request.Context(), c.session.Current(), c.session.SelectedGenres())
	if err != nil {
		if errors.Is(err, usecase_feed.ErrStaleBuild) {
			// A newer build already published, hand that one out.
			feed = c.feed.Current()
		} else {
			c.logger.Error("feed build failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{Message: "failed to load home feed"})
			return
		}
	}

	c.hero.Start()
	ctx.JSON(http.StatusOK, EnterResponseDTO{Feed: feed, SkipOnboarding: skip})
}

// @Summary Leave the home view: cancel the hero timer
// @Tags Home operations
// @Success 204
// @Router /home/leave [post]
func (c *Controller) leave(ctx *gin.Context) {
	c.hero.Stop()
	ctx.Status(http.StatusNoContent)
}

// @Summary Last published feed
// @Tags Home operations
// @Produce json
// @Success 200 {object} model.Feed
// @Router /home/feed [get]
func (c *Controller) currentFeed(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.feed.Current())
}

// @Summary Genre catalog for onboarding
// @Tags Home operations
// @Produce json
// @Success 200 {array} model.Genre
// @Failure 502 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /home/genres [get]
func (c *Controller) genres(ctx *gin.Context) {
	genres, err := c.feed.Genres(ctx.Request.Context())
	if err != nil {
		c.logger.Error("genre catalog load failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{Message: "failed to load genres"})
		return
	}
	ctx.JSON(http.StatusOK, genres)
}

// @Summary Current hero slot
// @Tags Home operations
// @Produce json
// @Success 200 {object} HeroResponseDTO
// @Router /home/hero [get]
func (c *Controller) heroSlot(ctx *gin.Context) {
	resp := HeroResponseDTO{Index: c.hero.Index()}
	if movie, ok := c.hero.Slot(c.feed.Popular()); ok {
		resp.Movie = &movie
	}
	ctx.JSON(http.StatusOK, resp)
}

// @Summary Manually select a hero slot, restarting the rotation timer
// @Tags Home operations
// @Accept json
// @Param request body HeroSelectRequestDTO true "Slot index"
// @Success 204
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Router /home/hero/select [post]
func (c *Controller) heroSelect(ctx *gin.Context) {
	var req HeroSelectRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid request format"})
		return
	}
	c.hero.Select(req.Index)
	ctx.Status(http.StatusNoContent)
}

// @Summary Mark that the user is navigating home from a detail view
// @Tags Home operations
// @Success 204
// @Router /home/return-from-detail [post]
func (c *Controller) markReturn(ctx *gin.Context) {
	token := ctx.GetHeader(http_session_middleware.TokenHeader)
	if token != "" {
		if err := c.flags.MarkReturnFromDetail(token, returnFlagTTL); err != nil {
			c.logger.Error("return flag write failed", slog.String("error", err.Error()))
		}
	}
	ctx.Status(http.StatusNoContent)
}
