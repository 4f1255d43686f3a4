package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures when talking to the clinic backend.
var (
	ErrMalformedResponse = errors.New("backend response has an unexpected shape")
	ErrUnauthenticated   = errors.New("session is not authenticated")
	ErrNotFound          = errors.New("requested resource not found")
)
