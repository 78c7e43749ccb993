package model

import "time"

// Static seat statuses.  These apply to the physical seat and are
// only consulted for a match when no match_seats row exists yet.
const (
	SeatAvailable   = "available"
	SeatBlocked     = "blocked"
	SeatMaintenance = "maintenance"
)

// Seat describes a physical seat in a stand.  Seats are identified
// by their stand, row label and seat label; the pair (row, seat)
// is unique within a stand.  The status here is static venue
// topology; per-match availability lives in MatchSeat.
type Seat struct {
	ID         uint64    `json:"id"`          // seats.id
	StandID    uint64    `json:"stand_id"`    // seats.stand_id
	RowLabel   string    `json:"row_label"`   // seats.row_label, e.g. "A1", "B12"
	SeatNumber string    `json:"seat_number"` // seats.seat_number, 1-based label within the row
	Status     string    `json:"status"`      // seats.status: available | blocked | maintenance
	CreatedAt  time.Time `json:"created_at"`  // seats.created_at
	UpdatedAt  time.Time `json:"updated_at"`  // seats.updated_at
}

// ValidSeatStatus reports whether s is an allowed static seat status.
func ValidSeatStatus(s string) bool {
	switch s {
	case SeatAvailable, SeatBlocked, SeatMaintenance:
		return true
	}
	return false
}
