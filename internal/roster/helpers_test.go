package roster

import (
	"context"
	"encoding/json"
	"sync"
)

const (
	testBucket  = "https://bucket.example/photos/"
	testDefault = "/static/img/default-profile.png"
)

// fakeAPI is a backend.Getter driven by a handler function.
type fakeAPI struct {
	mu     sync.Mutex
	calls  []string
	handle func(ctx context.Context, path string, dst any) error
}

func (f *fakeAPI) Get(ctx context.Context, path string, dst any) error {
	f.mu.Lock()
	f.calls = append(f.calls, path)
	f.mu.Unlock()
	return f.handle(ctx, path, dst)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func respond(dst any, body string) error {
	return json.Unmarshal([]byte(body), dst)
}

type recordingReporter struct {
	mu        sync.Mutex
	decisions []Decision
}

func (r *recordingReporter) Report(_ context.Context, d Decision) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, d)
}

func (r *recordingReporter) Outcomes() map[Outcome]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[Outcome]int)
	for _, d := range r.decisions {
		out[d.Outcome]++
	}
	return out
}

func strPtr(s string) *string { return &s }
