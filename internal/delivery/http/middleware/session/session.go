package http_session_middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/cinematch/core/internal/model"
)

const (
	// TokenHeader carries the token handed out on login/register.
	TokenHeader = "X-Session-Token"

	userContextKey = "active_user"
)

type TokenResolver interface {
	ResolveToken(token string) (model.UserID, error)
}

type SessionSource interface {
	Current() *model.User
}

// Middleware attaches the active user to the request context. It never
// aborts: the engine is usable by guests, unauthenticated mutations are
// answered by the engine's auth-required signal instead of a 401 wall.
type Middleware struct {
	tokens  TokenResolver
	session SessionSource
	logger  *slog.Logger
}

func New(tokens TokenResolver, session SessionSource) *Middleware {
	return &Middleware{
		tokens:  tokens,
		session: session,
		logger:  slog.Default(),
	}
}

func (m *Middleware) ResolveUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader(TokenHeader)
		if token == "" {
			ctx.Next()
			return
		}

		userID, err := m.tokens.ResolveToken(token)
		if err != nil {
			m.logger.Error("token resolve failed", slog.String("error", err.Error()))
			ctx.Next()
			return
		}
		if userID == model.EmptyUserID {
			ctx.Next()
			return
		}

		if user := m.session.Current(); user != nil && user.ID == userID {
			ctx.Set(userContextKey, user)
		}
		ctx.Next()
	}
}

// UserFrom returns the resolved user or nil for guests.
func UserFrom(ctx *gin.Context) *model.User {
	if v, ok := ctx.Get(userContextKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}
