package http_auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/cinematch/core/internal/delivery/http/common"
	http_session_middleware "github.com/cinematch/core/internal/delivery/http/middleware/session"
	"github.com/cinematch/core/internal/model"
	storage_session "github.com/cinematch/core/internal/storage/session"
)

const sessionTTL = 30 * 24 * time.Hour

type TokenCache interface {
	SetToken(token string, userID model.UserID, ttl time.Duration) error
	DropToken(token string) error
}

type Controller struct {
	store  *storage_session.Store
	tokens TokenCache
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(store *storage_session.Store, tokens TokenCache, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:  store,
		tokens: tokens,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/login", c.login)
	auth.POST("/register", c.register)
	auth.POST("/logout", c.logout)

	prefs := router.Group("/preferences")
	prefs.PUT("", c.savePreferences)
	prefs.POST("/reset", c.resetSelection)
}

type LoginRequestDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequestDTO struct {
	FullName       string  `json:"full_name" binding:"required"`
	Email          string  `json:"email" binding:"required"`
	Password       string  `json:"password" binding:"required"`
	SelectedGenres []int64 `json:"selected_genres"`
}

type SessionResponseDTO struct {
	User model.User `json:"user"`
}

type PreferencesRequestDTO struct {
	SelectedGenres []int64 `json:"selected_genres" binding:"required"`
}

// @Summary Log in against the remote catalog backend
// @Tags Session operations
// @Accept json
// @Produce json
// @Param request body LoginRequestDTO true "Credentials"
// @Success 200 {object} SessionResponseDTO
// @Header 200 {string} X-Session-Token "Session token for subsequent calls"
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Failure 401 {object} http_common.ErrorResponse "Rejected credentials"
// @Router /auth/login [post]
func (c *Controller) login(ctx *gin.Context) {
	var req LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid request format"})
		return
	}

	user, err := c.store.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.logger.Warn("login rejected", slog.String("error", err.Error()))
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "login failed"})
		return
	}

	c.issueToken(ctx, user)
	ctx.JSON(http.StatusOK, SessionResponseDTO{User: user})
}

// @Summary Register a new account
// @Tags Session operations
// @Accept json
// @Produce json
// @Param request body RegisterRequestDTO true "Registration data"
// @Success 201 {object} SessionResponseDTO
// @Header 201 {string} X-Session-Token "Session token for subsequent calls"
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Failure 502 {object} http_common.ErrorResponse "Backend rejected registration"
// @Router /auth/register [post]
func (c *Controller) register(ctx *gin.Context) {
	var req RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid request format"})
		return
	}

	user, err := c.store.Register(ctx.Request.Context(), req.FullName, req.Email, req.Password, req.SelectedGenres)
	if err != nil {
		c.logger.Warn("registration failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{Message: "registration failed"})
		return
	}

	c.issueToken(ctx, user)
	ctx.JSON(http.StatusCreated, SessionResponseDTO{User: user})
}

// @Summary Drop the active session
// @Tags Session operations
// @Success 204
// @Router /auth/logout [post]
func (c *Controller) logout(ctx *gin.Context) {
	if token := ctx.GetHeader(http_session_middleware.TokenHeader); token != "" {
		if err := c.tokens.DropToken(token); err != nil {
			c.logger.Error("failed to drop token", slog.String("error", err.Error()))
		}
	}
	c.store.Logout()
	ctx.Status(http.StatusNoContent)
}

// @Summary Save the onboarding genre selection
// @Tags Session operations
// @Accept json
// @Param request body PreferencesRequestDTO true "1 to 3 genre identifiers"
// @Success 204
// @Failure 400 {object} http_common.ErrorResponse "Selection outside 1..3"
// @Router /preferences [put]
func (c *Controller) savePreferences(ctx *gin.Context) {
	var req PreferencesRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid request format"})
		return
	}

	if err := c.store.SaveSelection(ctx.Request.Context(), req.SelectedGenres); err != nil {
		if errors.Is(err, storage_session.ErrGenreSelection) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Ask the UI to re-run onboarding
// @Tags Session operations
// @Success 202
// @Router /preferences/reset [post]
func (c *Controller) resetSelection(ctx *gin.Context) {
	c.store.ResetSelection()
	ctx.Status(http.StatusAccepted)
}

func (c *Controller) issueToken(ctx *gin.Context, user model.User) {
	token := uuid.NewString()
	if err := c.tokens.SetToken(token, user.ID, sessionTTL); err != nil {
		c.logger.Error("failed to cache session token", slog.String("error", err.Error()))
		return
	}
	ctx.Header(http_session_middleware.TokenHeader, token)
}
