package errors

import "errors"

// Shared failure kinds surfaced by services. Handlers translate these into
// the uniform HTTP error envelope; nothing below this layer knows about HTTP.
var (
	// ErrBadRequest marks a request whose shape is wrong before any lookup
	// happens (e.g. a quiz call with no category payload at all).
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound marks a missing record or an empty collection that the
	// caller treats as an error (unknown category, empty question page).
	ErrNotFound = errors.New("record not found")

	// ErrValidation marks well-formed input that a mutation rejects
	// (unknown category on create, non-integer quiz category id).
	ErrValidation = errors.New("unprocessable")
)
