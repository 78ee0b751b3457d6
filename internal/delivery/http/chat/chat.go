package http_chat

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/cinematch/core/internal/delivery/http/common"
	http_session_middleware "github.com/cinematch/core/internal/delivery/http/middleware/session"
	usecase_chat "github.com/cinematch/core/internal/usecase/chat"
)

type Controller struct {
	chat       *usecase_chat.Usecase
	middleware *http_session_middleware.Middleware
	logger     *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(chat *usecase_chat.Usecase, middleware *http_session_middleware.Middleware, opts ...ControllerOption) *Controller {
	c := &Controller{
		chat:       chat,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	chat.Use(c.middleware.ResolveUser())
	chat.POST("", c.send)
}

type ChatRequestDTO struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponseDTO struct {
	Response string `json:"response"`
}

// @Summary Send a message to the movie assistant
// @Tags Chat operations
// @Accept json
// @Produce json
// @Param request body ChatRequestDTO true "Message text"
// @Success 200 {object} ChatResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Failure 401 {object} http_common.ErrorResponse "No active session"
// @Failure 502 {object} http_common.ErrorResponse "Assistant unavailable"
// @Router /chat [post]
func (c *Controller) send(ctx *gin.Context) {
	var req ChatRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid request format"})
		return
	}

	reply, err := c.chat.Send(ctx.Request.Context(), http_session_middleware.UserFrom(ctx), req.Message)
	if err != nil {
		if errors.Is(err, usecase_chat.ErrAuthRequired) {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "sign in to use chat"})
			return
		}
		c.logger.Error("chat relay failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{Message: "assistant unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, ChatResponseDTO{Response: reply})
}
