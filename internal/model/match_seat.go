package model

import "time"

// Per-match seat statuses.  "booked" exists only at the match level;
// a physical seat is never booked, a seat-in-match is.
const (
	MatchSeatAvailable   = "available"
	MatchSeatBooked      = "booked"
	MatchSeatBlocked     = "blocked"
	MatchSeatMaintenance = "maintenance"
)

// MatchSeat joins one match and one seat and is the unit the booking
// engine reserves.  At most one row exists per (match, seat) pair,
// enforced by a unique key in the database.  A seat with no MatchSeat
// row for a match is implicitly available at the stand's base price;
// that default is computed at read time (see EffectiveSeatState) and
// never silently persisted.
type MatchSeat struct {
	ID         uint64    `json:"id"`          // match_seats.id
	MatchID    uint64    `json:"match_id"`    // match_seats.match_id
	SeatID     uint64    `json:"seat_id"`     // match_seats.seat_id
	PriceCents uint32    `json:"price_cents"` // match_seats.price_cents
	Status     string    `json:"status"`      // match_seats.status
	CreatedAt  time.Time `json:"created_at"`  // match_seats.created_at
	UpdatedAt  time.Time `json:"updated_at"`  // match_seats.updated_at
}

// ValidMatchSeatStatus reports whether s is an allowed per-match seat status.
func ValidMatchSeatStatus(s string) bool {
	switch s {
	case MatchSeatAvailable, MatchSeatBooked, MatchSeatBlocked, MatchSeatMaintenance:
		return true
	}
	return false
}
