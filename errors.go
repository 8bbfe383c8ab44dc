package pokespeare

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the requested creature does not exist upstream.
// Check with errors.Is; it is typically wrapped with the creature name.
var ErrNotFound = errors.New("not found")

// ErrorKind classifies upstream failures for logging and observability.
// The resolver collapses every kind into a Failed outcome; the kind is
// only surfaced in logs.
type ErrorKind string

const (
	// KindUnavailable is a transport/connection failure.
	KindUnavailable ErrorKind = "upstream_unavailable"
	// KindServerError is a 5xx-equivalent response from an upstream.
	KindServerError ErrorKind = "upstream_server_error"
	// KindUnexpectedStatus is a non-success, non-404 status that carries
	// no recognized payload.
	KindUnexpectedStatus ErrorKind = "upstream_unexpected_status"
	// KindDataError is a malformed or unexpected response body.
	KindDataError ErrorKind = "upstream_data_error"
	// KindNoUsableContent means the creature exists but has no usable
	// English description.
	KindNoUsableContent ErrorKind = "no_usable_content"
	// KindTranslationRejected is a domain-level error reported by the
	// translator itself (rate limit, malformed input).
	KindTranslationRejected ErrorKind = "translation_rejected"
)

// UpstreamError describes a failed call to an upstream service.
type UpstreamError struct {
	Service string    // upstream name, e.g. "pokeapi"
	Kind    ErrorKind // failure classification
	Message string    // human-readable reason
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Service, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// KindOf extracts the ErrorKind from an error chain.
// Returns an empty kind when no UpstreamError is present.
func KindOf(err error) ErrorKind {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ""
}
