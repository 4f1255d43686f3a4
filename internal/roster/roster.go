package roster

import "github.com/nfrund/psyclinic/internal/domain"

// Roster is an ordered, immutable snapshot of resolved profiles. Order is the
// order the backend returned. A new fetch produces a new Roster; an existing
// one is never modified.
type Roster struct {
	profiles []domain.Profile
}

// New copies profiles into a Roster.
func New(profiles []domain.Profile) Roster {
	if len(profiles) == 0 {
		return Roster{}
	}
	cp := make([]domain.Profile, len(profiles))
	copy(cp, profiles)
	return Roster{profiles: cp}
}

// Empty is the roster shown when the backend has nothing or failed.
func Empty() Roster { return Roster{} }

// Len returns the number of profiles.
func (r Roster) Len() int { return len(r.profiles) }

// IsEmpty reports whether the roster holds no profiles.
func (r Roster) IsEmpty() bool { return len(r.profiles) == 0 }

// At returns the profile at position i.
func (r Roster) At(i int) (domain.Profile, bool) {
	if i < 0 || i >= len(r.profiles) {
		return domain.Profile{}, false
	}
	return r.profiles[i], true
}

// Profiles returns a copy of all profiles.
func (r Roster) Profiles() []domain.Profile {
	return r.Slice(0, len(r.profiles))
}

// Slice returns up to n profiles starting at start. Ranges that run past the
// end yield fewer profiles; ranges entirely outside the roster yield none.
func (r Roster) Slice(start, n int) []domain.Profile {
	if start < 0 || n <= 0 || start >= len(r.profiles) {
		return []domain.Profile{}
	}
	end := min(start+n, len(r.profiles))
	out := make([]domain.Profile, end-start)
	copy(out, r.profiles[start:end])
	return out
}
