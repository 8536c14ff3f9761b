package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies catalog API failures so the degrade policy in the
// mood core can be exercised deterministically in tests.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindAuth
	KindNotFound
	KindRateLimited
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// APIError is a catalog failure tagged with its kind.
type APIError struct {
	Kind ErrorKind
	Err  error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb: %s: %v", e.Kind, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
