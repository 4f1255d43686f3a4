package diagnostics

import (
	"github.com/nfrund/psyclinic/internal/pubsub"
	"github.com/nfrund/psyclinic/internal/roster"
)

var (
	// TopicPhotoResolved carries one decision per resolved profile photo.
	TopicPhotoResolved = pubsub.NewEvent[roster.Decision](
		"roster.photo.resolved",
		"Outcome of resolving a single profile photo (signed, direct or default)",
	)

	// TopicListResolved carries one decision per roster fetch.
	TopicListResolved = pubsub.NewEvent[roster.Decision](
		"roster.list.resolved",
		"Outcome of fetching the roster list (ok, failed, malformed or truncated)",
	)
)

// Topics lists every diagnostics topic, for tooling.
func Topics() []pubsub.Event[roster.Decision] {
	return []pubsub.Event[roster.Decision]{TopicPhotoResolved, TopicListResolved}
}
