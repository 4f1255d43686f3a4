package roster

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/nfrund/psyclinic/internal/backend"
	"github.com/nfrund/psyclinic/internal/domain"
)

const (
	// IndexEndpoint lists landing-page profiles.
	IndexEndpoint = "/landing/user/index"

	// PageSize is the single-request upper bound for the roster. Rosters
	// larger than this are truncated; there is no pagination loop.
	PageSize = 100
)

// listResponse mirrors {data: {data: [Profile]}}.
type listResponse struct {
	Data *struct {
		Data *[]domain.Profile `json:"data"`
	} `json:"data"`
}

// Fetcher loads the roster and resolves every profile photo.
type Fetcher struct {
	api      backend.Getter
	photos   *PhotoResolver
	reporter Reporter
}

// NewFetcher creates a Fetcher. reporter receives list-level decisions and is
// also expected to be the reporter photos was built with.
func NewFetcher(api backend.Getter, photos *PhotoResolver, reporter Reporter) *Fetcher {
	if reporter == nil {
		reporter = discardReporter{}
	}
	return &Fetcher{api: api, photos: photos, reporter: reporter}
}

// IndexPath is the request path for the roster list, page size included.
func IndexPath() string {
	return IndexEndpoint + "?" + url.Values{"per_page": {strconv.Itoa(PageSize)}}.Encode()
}

// Fetch returns the resolved roster. It never fails: a transport error or a
// response without the expected list yields an empty roster.
//
// Photos are resolved concurrently, one goroutine per profile. A slow or
// failing resolution delays only the aggregate return. Cancelling ctx aborts
// in-flight requests; those profiles fall back to the default photo.
func (f *Fetcher) Fetch(ctx context.Context) Roster {
	var resp listResponse
	if err := f.api.Get(ctx, IndexPath(), &resp); err != nil {
		outcome := OutcomeListFailed
		if errors.Is(err, domain.ErrMalformedResponse) {
			outcome = OutcomeListMalformed
		}
		f.reporter.Report(ctx, Decision{Outcome: outcome, Reason: err.Error()})
		return Empty()
	}
	if resp.Data == nil || resp.Data.Data == nil {
		f.reporter.Report(ctx, Decision{Outcome: OutcomeListMalformed, Reason: "response has no data.data list"})
		return Empty()
	}

	profiles := *resp.Data.Data
	if len(profiles) >= PageSize {
		f.reporter.Report(ctx, Decision{Outcome: OutcomeListTruncated, Count: len(profiles), Reason: "roster reached the page size bound"})
	}

	resolved := make([]domain.Profile, len(profiles))
	var g errgroup.Group
	for i, p := range profiles {
		g.Go(func() error {
			resolved[i] = f.photos.Resolve(ctx, p)
			return nil
		})
	}
	// Resolve never fails, so Wait only waits.
	_ = g.Wait()

	f.reporter.Report(ctx, Decision{Outcome: OutcomeListOK, Count: len(resolved)})
	return New(resolved)
}
