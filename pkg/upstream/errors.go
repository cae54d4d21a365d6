// Package upstream classifies failures of hosted model providers so callers
// can map them to HTTP semantics without parsing provider text.
package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingCredential = errors.New("provider credential is not configured")
	ErrUnauthorized      = errors.New("provider rejected credentials")
	ErrRateLimited       = errors.New("provider rate limit exceeded")
	ErrUnavailable       = errors.New("provider unavailable")
	ErrBadResponse       = errors.New("provider returned an unexpected response")
)

// placeholderKey is the literal shipped in example env files.
const placeholderKey = "your-openai-api-key-here"

// Error carries the provider name and HTTP status next to the sentinel kind.
type Error struct {
	Provider string
	Status   int
	Kind     error
	Detail   string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: %v (status %d)", e.Provider, e.Kind, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// FromStatus converts a non-2xx provider status into a typed error.
// Detail keeps the raw body for server-side logs only.
func FromStatus(provider string, status int, body []byte) error {
	kind := ErrBadResponse
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = ErrUnauthorized
	case status == http.StatusTooManyRequests:
		kind = ErrRateLimited
	case status >= http.StatusInternalServerError:
		kind = ErrUnavailable
	}
	return &Error{Provider: provider, Status: status, Kind: kind, Detail: string(body)}
}

// Transport wraps a network-level failure as an unavailable provider.
func Transport(provider string, err error) error {
	return &Error{Provider: provider, Kind: ErrUnavailable, Detail: err.Error()}
}

// CheckCredential rejects empty keys and the example placeholder.
func CheckCredential(provider, key string) error {
	if key == "" || key == placeholderKey {
		return &Error{Provider: provider, Kind: ErrMissingCredential}
	}
	return nil
}

// HTTPStatus maps an upstream error to the status a handler should return.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrMissingCredential), errors.Is(err, ErrBadResponse):
		return http.StatusInternalServerError
	}
	return 0
}

// Phrase is the short client-facing text for an upstream failure.
func Phrase(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "AI provider rejected the configured API key"
	case errors.Is(err, ErrRateLimited):
		return "AI provider rate limit exceeded, please try again later"
	case errors.Is(err, ErrUnavailable):
		return "AI provider is temporarily unavailable"
	case errors.Is(err, ErrMissingCredential):
		return "AI provider is not configured"
	}
	return "AI provider returned an unexpected response"
}
