package domain

import "errors"

// ErrInvalidInput marks missing or malformed caller input. Wrapped messages
// are safe to show to clients.
var ErrInvalidInput = errors.New("invalid input")

// ErrStoreUnavailable replaces any store or connectivity failure before it
// crosses a service boundary; the underlying cause is logged, never returned.
var ErrStoreUnavailable = errors.New("storage unavailable")
