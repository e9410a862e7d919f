package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("connection error: backend is not reachable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrNoToken      = errors.New("no authentication token found")

	ErrResponseTooLarge = errors.New("response too large")
)

// APIError is a non-2xx response. Detail is the backend's "detail" message,
// or a generic fallback when the body carried none.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// Unwrap exposes the sentinel matching the status code so callers can test
// with errors.Is(err, ErrUnauthorized) and friends.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

func genericDetail(status int) string {
	if text := http.StatusText(status); text != "" {
		return fmt.Sprintf("request failed: %s", text)
	}
	return fmt.Sprintf("request failed: status %d", status)
}
