package roster

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/nfrund/psyclinic/internal/backend"
	"github.com/nfrund/psyclinic/internal/domain"
)

// PhotoEndpoint returns a signed URL for a profile's private photo.
const PhotoEndpoint = "/landing/user/get-profile-photo"

// photoResponse mirrors {data: {URL: string}}. Pointers distinguish a missing
// field from an empty one.
type photoResponse struct {
	Data *struct {
		URL *string `json:"URL"`
	} `json:"data"`
}

// PhotoResolver picks the display photo of a profile. The chain is:
// no storage key -> default asset; signed URL call fails -> default asset;
// call succeeds without a usable URL -> direct bucket URL; else the signed URL.
type PhotoResolver struct {
	api         backend.Getter
	bucketBase  string
	defaultPath string
	reporter    Reporter
}

// NewPhotoResolver creates a PhotoResolver.
func NewPhotoResolver(api backend.Getter, bucketBase, defaultPath string, reporter Reporter) *PhotoResolver {
	if reporter == nil {
		reporter = discardReporter{}
	}
	return &PhotoResolver{
		api:         api,
		bucketBase:  bucketBase,
		defaultPath: defaultPath,
		reporter:    reporter,
	}
}

// DefaultPath returns the local asset used as the last fallback.
func (r *PhotoResolver) DefaultPath() string { return r.defaultPath }

// DirectURL builds the unsigned storage URL for a storage key.
func (r *PhotoResolver) DirectURL(photoPath string) string {
	return r.bucketBase + photoPath
}

// Resolve returns p with PhotoURL set. It never fails; every failure maps to
// one of the fallbacks. A profile that already has a photo URL is returned as is.
func (r *PhotoResolver) Resolve(ctx context.Context, p domain.Profile) domain.Profile {
	if p.Resolved() {
		return p
	}

	if !p.HasPhotoPath() {
		r.reporter.Report(ctx, Decision{Outcome: OutcomeDefaultNoPath, ProfileID: p.ID})
		return p.WithPhotoURL(r.defaultPath)
	}

	var resp photoResponse
	query := url.Values{"user_id": {strconv.FormatInt(p.ID, 10)}}
	err := r.api.Get(ctx, PhotoEndpoint+"?"+query.Encode(), &resp)
	switch {
	case errors.Is(err, domain.ErrMalformedResponse):
		// The call succeeded but the body did not carry a usable URL.
		r.reporter.Report(ctx, Decision{Outcome: OutcomeDirect, ProfileID: p.ID, Reason: err.Error()})
		return p.WithPhotoURL(r.DirectURL(p.PhotoPath()))
	case err != nil:
		r.reporter.Report(ctx, Decision{Outcome: OutcomeDefaultFailed, ProfileID: p.ID, Reason: err.Error()})
		return p.WithPhotoURL(r.defaultPath)
	}

	if resp.Data == nil || resp.Data.URL == nil || !isWellFormedURL(*resp.Data.URL) {
		r.reporter.Report(ctx, Decision{Outcome: OutcomeDirect, ProfileID: p.ID, Reason: "signed url missing or malformed"})
		return p.WithPhotoURL(r.DirectURL(p.PhotoPath()))
	}

	r.reporter.Report(ctx, Decision{Outcome: OutcomeSigned, ProfileID: p.ID})
	return p.WithPhotoURL(*resp.Data.URL)
}

// isWellFormedURL accepts absolute http(s) URLs with a host.
func isWellFormedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
