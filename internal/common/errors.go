// Package common defines shared constants and sentinel errors used across
// the rentadmin client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport / availability errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors (missing, expired or rejected token).
	ErrUnauthorized = errors.New("unauthorized")

	// Resource errors.
	ErrNotFound = errors.New("not found")

	// Backend 5xx responses.
	ErrServerFailure = errors.New("server failure")

	// Operations a screen does not support (e.g. creating a report).
	ErrUnsupported = errors.New("operation not supported")
)
