package weather

import (
	"fmt"

	errors "github.com/Laisky/errors/v2"
)

// ErrorKind identifies why a lookup failed.
type ErrorKind string

const (
	// KindNotFound means the provider has no location matching the query.
	KindNotFound ErrorKind = "NOT_FOUND"
	// KindNetwork covers transport failures, timeouts and truncated bodies.
	KindNetwork ErrorKind = "NETWORK"
	// KindAuth means the provider rejected the API key.
	KindAuth ErrorKind = "AUTH"
	// KindMalformed means the response could not be decoded into an observation.
	KindMalformed ErrorKind = "MALFORMED"
	// KindUnknown is everything else, including server errors.
	KindUnknown ErrorKind = "UNKNOWN"
)

// LookupError is the typed error returned by Client.Current.
type LookupError struct {
	Kind ErrorKind
	// Status is the HTTP status returned by the provider, 0 when no response arrived.
	Status int
	Err    error
}

// Error returns the error message.
func (e *LookupError) Error() string {
	if e == nil {
		return "weather lookup error: <nil>"
	}
	msg := fmt.Sprintf("weather lookup %s", e.Kind)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *LookupError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewLookupError constructs a typed lookup error.
func NewLookupError(kind ErrorKind, status int, err error) *LookupError {
	return &LookupError{Kind: kind, Status: status, Err: err}
}

// AsLookupError extracts a typed lookup error from the error chain.
func AsLookupError(err error) (*LookupError, bool) {
	if err == nil {
		return nil, false
	}
	var typed *LookupError
	if errors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}

// KindOf classifies any error. Errors that are not LookupErrors are KindUnknown.
func KindOf(err error) ErrorKind {
	if typed, ok := AsLookupError(err); ok {
		return typed.Kind
	}
	return KindUnknown
}

// IsKind reports whether the error chain carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// kindForStatus maps a provider status code onto an ErrorKind.
func kindForStatus(status int) ErrorKind {
	switch {
	case status == 404:
		return KindNotFound
	case status == 401 || status == 403:
		return KindAuth
	default:
		return KindUnknown
	}
}
