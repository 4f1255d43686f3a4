package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Human holds the personal name of a professional.
type Human struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Specialization is the optional professional focus of a profile.
type Specialization struct {
	Name string `json:"name"`
}

// Profile is a psychologist as returned by the landing roster endpoint,
// plus the display photo resolved for it.
type Profile struct {
	ID                 int64           `json:"id"`
	Human              Human           `json:"human"`
	Specialization     *Specialization `json:"specialization,omitempty"`
	ProfileDescription *string         `json:"profile_description,omitempty"`
	ProfilePhotoPath   *string         `json:"profile_photo_path,omitempty"`

	// PhotoURL is derived locally and is always set once the profile has
	// gone through photo resolution.
	PhotoURL string `json:"photo_url"`
}

// HasPhotoPath reports whether the profile points at a storage object.
func (p Profile) HasPhotoPath() bool {
	return p.ProfilePhotoPath != nil && strings.TrimSpace(*p.ProfilePhotoPath) != ""
}

// PhotoPath returns the storage key, or "" when there is none.
func (p Profile) PhotoPath() string {
	if !p.HasPhotoPath() {
		return ""
	}
	return *p.ProfilePhotoPath
}

// DisplayName joins first and last name for rendering.
func (p Profile) DisplayName() string {
	name := strings.TrimSpace(p.Human.FirstName + " " + p.Human.LastName)
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.Und).String(name)
}

// SpecializationName returns the specialization or "" when absent.
func (p Profile) SpecializationName() string {
	if p.Specialization == nil {
		return ""
	}
	return p.Specialization.Name
}

// Description returns the profile description or "" when absent.
func (p Profile) Description() string {
	if p.ProfileDescription == nil {
		return ""
	}
	return *p.ProfileDescription
}

// Resolved reports whether a photo URL has already been assigned.
func (p Profile) Resolved() bool {
	return p.PhotoURL != ""
}

// WithPhotoURL returns a copy of p with PhotoURL set. A profile that already
// carries a photo URL is returned unchanged; the first resolution wins.
func (p Profile) WithPhotoURL(url string) Profile {
	if p.Resolved() {
		return p
	}
	p.PhotoURL = url
	return p
}
