package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nfrund/psyclinic/internal/domain"
)

// APIError is returned for any non-2xx backend response.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: backend returned %d: %s", e.Operation, e.StatusCode, e.Message)
}

// Is maps auth and not-found statuses onto the domain sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrUnauthenticated:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

type errorBody struct {
	Message string `json:"message"`
}

func newAPIError(operation string, status int, body []byte) *APIError {
	msg := strings.TrimSpace(string(body))
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil && eb.Message != "" {
		msg = eb.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Operation: operation, StatusCode: status, Message: msg}
}
