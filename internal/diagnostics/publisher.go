package diagnostics

import (
	"context"
	"log/slog"

	"github.com/nfrund/psyclinic/internal/pubsub"
	"github.com/nfrund/psyclinic/internal/roster"
)

// Publisher is a roster.Reporter that puts every decision on the bus.
type Publisher struct {
	pub    pubsub.Publisher
	logger *slog.Logger
}

// NewPublisher creates a Publisher.
func NewPublisher(pub pubsub.Publisher) *Publisher {
	return &Publisher{
		pub:    pub,
		logger: slog.Default().With("component", "diagnostics"),
	}
}

// Report implements roster.Reporter. Publishing failures are logged and
// otherwise ignored; diagnostics never affect the page.
func (p *Publisher) Report(ctx context.Context, d roster.Decision) {
	event := TopicListResolved
	if d.Outcome.IsPhoto() {
		event = TopicPhotoResolved
	}
	// The decision is worth recording even if the request that caused it is gone.
	if err := pubsub.Publish(context.WithoutCancel(ctx), p.pub, event, d); err != nil {
		p.logger.WarnContext(ctx, "failed to publish roster decision", "topic", event.Name(), "error", err)
	}
}
