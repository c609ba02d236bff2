package engine

import "errors"

// Sentinel errors returned across the public API and the I/O-device
// protocol. Callers are expected to compare with errors.Is.
var (
	// ErrNoTerminal is returned by Start when no terminal is available
	// (spec.md §7, startup failure).
	ErrNoTerminal = errors.New("owl: no terminal available")

	// ErrStopped is returned by any operation attempted on an Engine
	// that has already received Stop.
	ErrStopped = errors.New("owl: engine stopped")

	// ErrNotSupported is the immediate reply to any I/O-device request
	// not in the supported put_chars family (spec.md §6).
	ErrNotSupported = errors.New("owl: io request not supported")

	// ErrBadRequest is the immediate reply to an unrecognized I/O-device
	// request shape.
	ErrBadRequest = errors.New("owl: bad io request")
)
