package domain

import "errors"

// Sentinel errors shared across repositories and services. Callers use
// errors.Is to map them to transport status codes.
var (
	// ErrNotFound means no matching resource (building, sensor, tag, ...).
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidArgument means a missing or malformed request parameter,
	// detected before any storage call.
	ErrInvalidArgument = errors.New("invalid argument")
)
