// Package repository defines typed data access over MySQL for every
// domain entity.  This file holds error values that are reused across
// multiple repositories.  These sentinels allow handlers to map
// failure scenarios onto HTTP status codes without string matching.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers translate this into 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state, such as deleting a seat that is booked
// for a match, or cancelling an already-cancelled booking.  Handlers
// translate this into 409.
var ErrConflict = errors.New("conflict")

// ErrSeatUnavailable is returned by the booking path when the targeted
// seat-in-match is no longer available: the conditional status flip
// affected zero rows because another booking won the seat, or an admin
// blocked it.  Handlers translate this into 409 plus a refreshed seat
// map so the caller's stale view corrects itself.
var ErrSeatUnavailable = errors.New("seat unavailable")
