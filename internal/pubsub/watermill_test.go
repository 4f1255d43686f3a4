package pubsub

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/psyclinic/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decision struct {
	Outcome   string `json:"outcome"`
	ProfileID int64  `json:"profile_id"`
}

func TestTypedEvent_RoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := NewEvent[decision]("test.decision", "decisions under test")
	assert.Equal(t, "test.decision", event.Name())
	assert.Equal(t, "decisions under test", event.Description())

	var mu sync.Mutex
	var got []decision
	done := make(chan struct{}, 2)
	require.NoError(t, Subscribe(ctx, bridge, event, func(_ context.Context, d decision) error {
		mu.Lock()
		got = append(got, d)
		mu.Unlock()
		done <- struct{}{}
		return nil
	}))

	require.NoError(t, Publish(ctx, bridge, event, decision{Outcome: "signed", ProfileID: 1}))
	require.NoError(t, Publish(ctx, bridge, event, decision{Outcome: "direct", ProfileID: 2}))

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for typed events")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []decision{{"signed", 1}, {"direct", 2}}, got)
}

func TestSubscribe_HandlerErrorDoesNotRedeliver(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	calls := 0
	require.NoError(t, bridge.Subscribe(ctx, "flaky", func(context.Context, Message) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return errors.New("boom")
	}))

	require.NoError(t, bridge.Publish(ctx, Message{Topic: "flaky", Payload: []byte("{}")}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestTracingConfigFrom(t *testing.T) {
	cfg := TracingConfigFrom(config.TracingConfig{Enabled: true})
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "psyclinic", cfg.ServiceName)
}
