package handlers

import "github.com/nfrund/psyclinic/internal/domain"

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RosterResponse is the body of GET /api/roster. Every profile carries a
// resolved photo_url.
type RosterResponse struct {
	Data  []domain.Profile `json:"data"`
	Count int              `json:"count"`
}
