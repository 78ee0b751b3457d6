package usecase_chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cinematch/core/internal/model"
)

var (
	ErrAuthRequired    = errors.New("chat requires an active session")
	ErrChatUnavailable = errors.New("chat backend unavailable")
)

type Gateway interface {
	SendChatMessage(ctx context.Context, text string, userID model.UserID) (string, error)
}

type Notifier interface {
	AuthRequired()
}

// Usecase relays chat messages to the remote assistant with the active
// user attached so answers can be personalized.
type Usecase struct {
	gateway  Gateway
	notifier Notifier
	logger   *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(gateway Gateway, notifier Notifier, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		gateway:  gateway,
		notifier: notifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) Send(ctx context.Context, user *model.User, text string) (string, error) {
	if user == nil {
		u.notifier.AuthRequired()
		return "", ErrAuthRequired
	}

	reply, err := u.gateway.SendChatMessage(ctx, text, user.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrChatUnavailable, err)
	}
	return reply, nil
}
