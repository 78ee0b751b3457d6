package service_hero

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cinematch/core/internal/model"
)

type Notifier interface {
	HeroChanged(index int)
}

// Scheduler drives the timed hero banner rotation. The slot count is
// fixed regardless of how many movies actually arrived, readers fall
// back through Slot when the data is shorter.
type Scheduler struct {
	interval time.Duration
	slots    int
	notifier Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	index   int
	running bool
	stop    chan struct{}
	reset   chan struct{}
}

type SchedulerOption func(*Scheduler)

func WithLogger(logger *slog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

func New(interval time.Duration, slots int, notifier Notifier, opts ...SchedulerOption) *Scheduler {
	if slots <= 0 {
		slots = 5
	}
	s := &Scheduler{
		interval: interval,
		slots:    slots,
		notifier: notifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the periodic rotation. Idempotent while running.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.reset = make(chan struct{}, 1)
	go s.run(s.stop, s.reset)
}

// Stop cancels the timer. Leaving the home view must not leak a ticking
// goroutine.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	close(s.stop)
}

// Select jumps to an explicit slot and restarts the interval from zero
// so manual navigation does not fight the automatic rotation.
func (s *Scheduler) Select(index int) {
	s.mu.Lock()
	if index >= 0 && index < s.slots {
		s.index = index
	}
	idx := s.index
	reset := s.reset
	running := s.running
	s.mu.Unlock()

	if running {
		select {
		case reset <- struct{}{}:
		default:
		}
	}
	s.notifier.HeroChanged(idx)
}

func (s *Scheduler) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Slot resolves the hero movie for the current index. An index beyond
// the data falls back to slot 0 rather than rendering nothing.
func (s *Scheduler) Slot(movies []model.Movie) (model.Movie, bool) {
	if len(movies) == 0 {
		return model.Movie{}, false
	}
	idx := s.Index()
	if idx >= len(movies) {
		idx = 0
	}
	return movies[idx], true
}

func (s *Scheduler) run(stop, reset <-chan struct{}) {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-reset:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(s.interval)
		case <-timer.C:
			s.advance()
			timer.Reset(s.interval)
		}
	}
}

func (s *Scheduler) advance() {
	s.mu.Lock()
	s.index = (s.index + 1) % s.slots
	idx := s.index
	s.mu.Unlock()

	s.notifier.HeroChanged(idx)
}
