package service_signal

import (
	"log/slog"
	"sync"
)

type Kind string

const (
	// KindAuthRequired fires when a mutating action was attempted with
	// no active user. The engine never blocks on the prompt.
	KindAuthRequired   Kind = "AUTH_REQUIRED"
	KindSelectionReset Kind = "SELECTION_RESET"
	KindFeedFailed     Kind = "FEED_FAILED"
	KindFeedReady      Kind = "FEED_READY"
	KindHeroChanged    Kind = "HERO_CHANGED"
	KindSessionChanged Kind = "SESSION_CHANGED"
)

type Signal struct {
	Kind    Kind `json:"kind"`
	Payload any  `json:"payload,omitempty"`
}

// Bus is a fire-and-forget fan-out of engine signals to presentation
// subscribers. Publish never blocks: a subscriber that cannot keep up
// loses signals instead of stalling the engine.
type Bus struct {
	mu     sync.RWMutex
	subs   map[uint64]chan Signal
	nextID uint64
	logger *slog.Logger
}

type BusOption func(*Bus)

func WithLogger(logger *slog.Logger) BusOption {
	return func(b *Bus) {
		b.logger = logger
	}
}

func New(opts ...BusOption) *Bus {
	b := &Bus{
		subs:   make(map[uint64]chan Signal),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bus) Publish(s Signal) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- s:
		default:
			b.logger.Warn("signal dropped, slow subscriber",
				slog.String("kind", string(s.Kind)),
				slog.Uint64("subscriber", id))
		}
	}
}

// Subscribe returns a signal channel and a cancel func. The channel is
// closed on cancel.
func (b *Bus) Subscribe(buffer int) (<-chan Signal, func()) {
	if buffer <= 0 {
		buffer = 16
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan Signal, buffer)
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
