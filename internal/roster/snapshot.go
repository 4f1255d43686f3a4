package roster

import (
	"context"
	"sync"
	"time"
)

// Source produces a fresh roster. *Fetcher implements it.
type Source interface {
	Fetch(ctx context.Context) Roster
}

type snapshotEntry struct {
	roster  Roster
	expires time.Time
}

// SnapshotStore keeps the roster each browser session mounted, so carousel
// navigation does not refetch. Entries are replaced wholesale on mount and
// dropped after the TTL; nothing outlives the browser session.
type SnapshotStore struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]snapshotEntry
}

// SnapshotOption configures a SnapshotStore.
type SnapshotOption func(*SnapshotStore)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) SnapshotOption {
	return func(s *SnapshotStore) {
		s.now = now
	}
}

// NewSnapshotStore creates a store that mounts rosters from source.
func NewSnapshotStore(source Source, ttl time.Duration, opts ...SnapshotOption) *SnapshotStore {
	s := &SnapshotStore{
		source:  source,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]snapshotEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount fetches a fresh roster for the session and replaces any previous one.
// The fetch runs without the store lock held.
func (s *SnapshotStore) Mount(ctx context.Context, sessionID string) Roster {
	r := s.source.Fetch(ctx)
	if ctx.Err() != nil {
		// The page went away mid-fetch; keep whatever the session had.
		return r
	}
	s.put(sessionID, r)
	return r
}

// Current returns the session's mounted roster, mounting one if the session
// has none or it expired.
func (s *SnapshotStore) Current(ctx context.Context, sessionID string) Roster {
	if r, ok := s.Get(sessionID); ok {
		return r
	}
	return s.Mount(ctx, sessionID)
}

// Get returns the stored roster for sessionID.
func (s *SnapshotStore) Get(sessionID string) (Roster, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		return Roster{}, false
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, sessionID)
		return Roster{}, false
	}
	return e.roster, true
}

// Len returns the number of live snapshots.
func (s *SnapshotStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *SnapshotStore) put(sessionID string, r Roster) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
		}
	}
	s.entries[sessionID] = snapshotEntry{roster: r, expires: now.Add(s.ttl)}
}
