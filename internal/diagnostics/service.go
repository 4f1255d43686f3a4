package diagnostics

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/psyclinic/internal/pubsub"
	"github.com/nfrund/psyclinic/internal/roster"
)

// DefaultRecentLimit bounds the number of decisions kept for display.
const DefaultRecentLimit = 25

// Entry is a decision with the time it was recorded.
type Entry struct {
	Decision roster.Decision
	At       time.Time
}

// Snapshot is a point-in-time copy of the counters for rendering.
type Snapshot struct {
	Since          time.Time
	Counts         map[roster.Outcome]int
	PhotoTotal     int
	PhotoFallbacks int
	ListTotal      int
	ListFailures   int
	Recent         []Entry
}

// PhotoFallbackRate is the share of photo resolutions that degraded, 0..1.
func (s Snapshot) PhotoFallbackRate() float64 {
	if s.PhotoTotal == 0 {
		return 0
	}
	return float64(s.PhotoFallbacks) / float64(s.PhotoTotal)
}

// Service tallies roster decisions from the bus so operators can spot
// widespread photo or list failures that the landing page hides.
type Service struct {
	subscriber pubsub.Subscriber
	logger     *slog.Logger
	now        func() time.Time
	limit      int

	mu       sync.RWMutex
	since    time.Time
	counts   map[roster.Outcome]int
	recent   []Entry
	watchers []func(Snapshot)
}

// Option is a function that configures a Service.
type Option func(*Service)

// WithRecentLimit sets how many recent decisions are kept.
func WithRecentLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service reading from subscriber.
func NewService(subscriber pubsub.Subscriber, opts ...Option) *Service {
	svc := &Service{
		subscriber: subscriber,
		logger:     slog.Default().With("service", "diagnostics"),
		now:        time.Now,
		limit:      DefaultRecentLimit,
		counts:     make(map[roster.Outcome]int),
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.since = svc.now()
	return svc
}

// Start subscribes to every diagnostics topic. Processing stops when ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	for _, topic := range Topics() {
		err := pubsub.Subscribe(ctx, s.subscriber, topic, func(_ context.Context, d roster.Decision) error {
			s.Record(d)
			return nil
		})
		if err != nil {
			return fmt.Errorf("subscribe to %s: %w", topic.Name(), err)
		}
		s.logger.Info("Subscribed to diagnostics topic", "topic", topic.Name())
	}
	return nil
}

// Watch registers fn to receive a fresh snapshot after every recorded
// decision. fn runs on the recording goroutine and must not block.
func (s *Service) Watch(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// Record adds a decision to the counters and notifies watchers.
func (s *Service) Record(d roster.Decision) {
	s.mu.Lock()
	s.counts[d.Outcome]++
	s.recent = append(s.recent, Entry{Decision: d, At: s.now()})
	if over := len(s.recent) - s.limit; over > 0 {
		s.recent = append(s.recent[:0:0], s.recent[over:]...)
	}
	watchers := s.watchers
	s.mu.Unlock()

	if len(watchers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range watchers {
		fn(snap)
	}
}

// Snapshot returns a copy of the current counters, newest decisions first.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Since:  s.since,
		Counts: make(map[roster.Outcome]int, len(s.counts)),
		Recent: make([]Entry, 0, len(s.recent)),
	}
	for outcome, n := range s.counts {
		snap.Counts[outcome] = n
		switch {
		case outcome.IsPhoto():
			snap.PhotoTotal += n
			if outcome.IsFallback() {
				snap.PhotoFallbacks += n
			}
		case outcome == roster.OutcomeListTruncated:
			// Truncation accompanies an ok fetch; it is not a fetch of its own.
		default:
			snap.ListTotal += n
			if outcome.IsFallback() {
				snap.ListFailures += n
			}
		}
	}
	for i := len(s.recent) - 1; i >= 0; i-- {
		snap.Recent = append(snap.Recent, s.recent[i])
	}
	return snap
}
