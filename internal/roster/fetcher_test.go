package roster

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/psyclinic/internal/backend"
	"github.com/nfrund/psyclinic/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(api *fakeAPI, rep Reporter) *Fetcher {
	return NewFetcher(api, NewPhotoResolver(api, testBucket, testDefault, rep), rep)
}

func TestFetcher_Fetch_ListFailures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantOutcome Outcome
	}{
		{name: "transport error", err: errors.New("dial tcp: refused"), wantOutcome: OutcomeListFailed},
		{name: "no data object", body: `{}`, wantOutcome: OutcomeListMalformed},
		{name: "no inner list", body: `{"data":{}}`, wantOutcome: OutcomeListMalformed},
		{name: "null inner list", body: `{"data":{"data":null}}`, wantOutcome: OutcomeListMalformed},
		{name: "undecodable body", err: fmt.Errorf("list: %w", domain.ErrMalformedResponse), wantOutcome: OutcomeListMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{handle: func(_ context.Context, _ string, dst any) error {
				if tt.err != nil {
					return tt.err
				}
				return respond(dst, tt.body)
			}}
			rep := &recordingReporter{}

			r := newTestFetcher(api, rep).Fetch(context.Background())

			assert.True(t, r.IsEmpty())
			assert.Equal(t, 1, rep.Outcomes()[tt.wantOutcome])
			assert.Len(t, api.Calls(), 1, "no photo calls after a failed list")
		})
	}
}

func TestFetcher_Fetch_EmptyList(t *testing.T) {
	api := &fakeAPI{handle: func(_ context.Context, _ string, dst any) error {
		return respond(dst, `{"data":{"data":[]}}`)
	}}
	rep := &recordingReporter{}

	r := newTestFetcher(api, rep).Fetch(context.Background())

	assert.True(t, r.IsEmpty())
	assert.Equal(t, map[Outcome]int{OutcomeListOK: 1}, rep.Outcomes())
	assert.Equal(t, []string{"/landing/user/index?per_page=100"}, api.Calls())
}

func TestFetcher_Fetch_ResolvesEveryProfileInOrder(t *testing.T) {
	api := &fakeAPI{handle: func(_ context.Context, path string, dst any) error {
		switch {
		case strings.HasPrefix(path, IndexEndpoint):
			return respond(dst, `{"data":{"data":[
				{"id":1,"human":{"first_name":"A","last_name":"One"}},
				{"id":2,"human":{"first_name":"B","last_name":"Two"},"profile_photo_path":"p/2.jpg"},
				{"id":3,"human":{"first_name":"C","last_name":"Three"},"profile_photo_path":"p/3.jpg"},
				{"id":4,"human":{"first_name":"D","last_name":"Four"},"profile_photo_path":"p/4.jpg"}
			]}}`)
		case strings.HasSuffix(path, "user_id=2"):
			return respond(dst, `{"data":{"URL":"https://signed.example/2.jpg"}}`)
		case strings.HasSuffix(path, "user_id=3"):
			return respond(dst, `{"data":{"URL":""}}`)
		default:
			return errors.New("unauthorized")
		}
	}}
	rep := &recordingReporter{}

	r := newTestFetcher(api, rep).Fetch(context.Background())

	require.Equal(t, 4, r.Len())
	var ids []int64
	var urls []string
	for _, p := range r.Profiles() {
		ids = append(ids, p.ID)
		urls = append(urls, p.PhotoURL)
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)
	assert.Equal(t, []string{
		testDefault,
		"https://signed.example/2.jpg",
		testBucket + "p/3.jpg",
		testDefault,
	}, urls)

	assert.Equal(t, map[Outcome]int{
		OutcomeDefaultNoPath: 1,
		OutcomeSigned:        1,
		OutcomeDirect:        1,
		OutcomeDefaultFailed: 1,
		OutcomeListOK:        1,
	}, rep.Outcomes())
}

func TestFetcher_Fetch_ResolvesConcurrently(t *testing.T) {
	const n = 5

	// Every photo call blocks until all n calls are in flight. A sequential
	// implementation would never get past the first one.
	var started sync.WaitGroup
	started.Add(n)
	allStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(allStarted)
	}()

	api := &fakeAPI{handle: func(ctx context.Context, path string, dst any) error {
		if strings.HasPrefix(path, IndexEndpoint) {
			var items []string
			for i := 1; i <= n; i++ {
				items = append(items, fmt.Sprintf(`{"id":%d,"profile_photo_path":"p/%d.jpg"}`, i, i))
			}
			return respond(dst, `{"data":{"data":[`+strings.Join(items, ",")+`]}}`)
		}
		started.Done()
		select {
		case <-allStarted:
			return respond(dst, `{"data":{"URL":"https://signed.example/x.jpg"}}`)
		case <-time.After(2 * time.Second):
			return errors.New("resolutions were not concurrent")
		}
	}}

	r := newTestFetcher(api, nil).Fetch(context.Background())

	require.Equal(t, n, r.Len())
	for _, p := range r.Profiles() {
		assert.Equal(t, "https://signed.example/x.jpg", p.PhotoURL)
	}
}

func TestFetcher_Fetch_ReportsTruncation(t *testing.T) {
	api := &fakeAPI{handle: func(_ context.Context, path string, dst any) error {
		items := make([]string, PageSize)
		for i := range items {
			items[i] = fmt.Sprintf(`{"id":%d}`, i+1)
		}
		return respond(dst, `{"data":{"data":[`+strings.Join(items, ",")+`]}}`)
	}}
	rep := &recordingReporter{}

	r := newTestFetcher(api, rep).Fetch(context.Background())

	assert.Equal(t, PageSize, r.Len())
	assert.Equal(t, 1, rep.Outcomes()[OutcomeListTruncated])
}

func TestFetcher_Fetch_OverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/landing/user/index":
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			_, _ = w.Write([]byte(`{"data":{"data":[
				{"id":10,"human":{"first_name":"Ewa","last_name":"Lis"},"profile_photo_path":"p/10.jpg"},
				{"id":11,"human":{"first_name":"Jan","last_name":"Wolny"},"profile_photo_path":"p/11.jpg"}
			]}}`))
		case "/api/landing/user/get-profile-photo":
			if r.URL.Query().Get("user_id") == "11" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"data":{"URL":"https://signed.example/10.jpg"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client, err := backend.New(srv.URL + "/api")
	require.NoError(t, err)
	fetcher := NewFetcher(client, NewPhotoResolver(client, testBucket, testDefault, nil), nil)

	r := fetcher.Fetch(context.Background())

	require.Equal(t, 2, r.Len())
	first, _ := r.At(0)
	second, _ := r.At(1)
	assert.Equal(t, "https://signed.example/10.jpg", first.PhotoURL)
	assert.Equal(t, testDefault, second.PhotoURL)
}

func TestFetcher_Fetch_CancelledContext(t *testing.T) {
	api := &fakeAPI{handle: func(ctx context.Context, _ string, _ any) error {
		return ctx.Err()
	}}
	rep := &recordingReporter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestFetcher(api, rep).Fetch(ctx)

	assert.True(t, r.IsEmpty())
	assert.Equal(t, 1, rep.Outcomes()[OutcomeListFailed])
}
