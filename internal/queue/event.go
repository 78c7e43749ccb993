// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketBookedEvent is published when a booking is successfully
// confirmed.  It carries enough venue context for downstream consumers
// to log, notify, or feed analytics without querying the primary
// database.
type TicketBookedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	TicketCode  string `json:"ticket_code"`
	UserID      uint64 `json:"user_id"`
	MatchID     uint64 `json:"match_id"`
	TeamA       string `json:"team_a"`
	TeamB       string `json:"team_b"`
	MatchDate   string `json:"match_date"`
	StadiumName string `json:"stadium_name"`
	StandName   string `json:"stand_name"`
	SeatLabel   string `json:"seat_label"`
	AmountCents uint32 `json:"amount_cents"`
	BookedAt    string `json:"booked_at"`
}

// TicketCancelledEvent is published when a booking is cancelled and
// its seat returns to sale.
type TicketCancelledEvent struct {
	BookingID   uint64 `json:"booking_id"`
	TicketCode  string `json:"ticket_code"`
	UserID      uint64 `json:"user_id"`
	MatchID     uint64 `json:"match_id"`
	CancelledAt string `json:"cancelled_at"`
}
