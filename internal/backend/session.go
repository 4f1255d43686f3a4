package backend

import (
	"context"
	"fmt"

	"github.com/nfrund/psyclinic/internal/domain"
)

// MePath is the backend endpoint that resolves the bearer token to its user.
const MePath = "/landing/user/me"

// SessionService authenticates dashboard sessions against the backend.
type SessionService struct {
	api Getter
}

// NewSessionService creates a SessionService on top of api.
func NewSessionService(api Getter) *SessionService {
	return &SessionService{api: api}
}

type meResponse struct {
	Data *domain.User `json:"data"`
}

// Authenticate implements domain.Authenticator.
func (s *SessionService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	var resp meResponse
	if err := s.api.Get(ContextWithToken(ctx, token), MePath, &resp); err != nil {
		return nil, fmt.Errorf("authenticate session: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("authenticate session: %w", domain.ErrMalformedResponse)
	}
	return resp.Data, nil
}
