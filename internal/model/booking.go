package model

import "time"

// Payment and booking statuses.  Payment is recorded but never
// verified here; the booking engine writes "completed" on success.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentRefunded  = "refunded"

	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking records a fan's ticket for one seat in one match.  The
// amount is captured at booking time and never re-derived from the
// seat's current price.  Cancellation flips BookingStatus only; the
// row is kept for history and ledger views.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – fan who made the booking.
//  MatchID       – match being attended.
//  MatchSeatID   – the reserved seat-in-match.
//  AmountCents   – price paid, captured at booking time.
//  PaymentStatus – pending | completed | refunded.
//  BookingStatus – confirmed | cancelled.
//  TicketCode    – 8-char uppercase alphanumeric reference shown to
//                  the fan; intended but not guaranteed unique.
//  BookingDate   – when the booking was made (UTC).
type Booking struct {
	ID            uint64    `json:"id"`             // bookings.id
	UserID        uint64    `json:"user_id"`        // bookings.user_id
	MatchID       uint64    `json:"match_id"`       // bookings.match_id
	MatchSeatID   uint64    `json:"match_seat_id"`  // bookings.match_seat_id
	AmountCents   uint32    `json:"amount_cents"`   // bookings.amount_cents
	PaymentStatus string    `json:"payment_status"` // bookings.payment_status
	BookingStatus string    `json:"booking_status"` // bookings.booking_status
	TicketCode    string    `json:"ticket_code"`    // bookings.ticket_code
	BookingDate   time.Time `json:"booking_date"`   // bookings.booking_date
	CreatedAt     time.Time `json:"created_at"`     // bookings.created_at
	UpdatedAt     time.Time `json:"updated_at"`     // bookings.updated_at
}
