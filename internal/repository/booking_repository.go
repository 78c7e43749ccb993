package repository // repository defines data access for the booking ledger

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wicketgate/cricket-ticketing/internal/model"
)

// ErrBookingNotFound is returned when a booking lookup yields no rows.
var ErrBookingNotFound = errors.New("booking not found")

// bookingColumns is the canonical column list shared by all booking queries.
const bookingColumns = `id, user_id, match_id, match_seat_id, amount_cents,
	payment_status, booking_status, ticket_code, booking_date, created_at, updated_at`

// scanBooking scans a booking row in bookingColumns order.
func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
	return row.Scan(&b.ID, &b.UserID, &b.MatchID, &b.MatchSeatID, &b.AmountCents,
		&b.PaymentStatus, &b.BookingStatus, &b.TicketCode, &b.BookingDate, &b.CreatedAt, &b.UpdatedAt)
}

// BookingDetail is a booking joined through its seat back to the venue,
// the shape the ledger views return: fans see where they sit, admins
// see who booked what.
type BookingDetail struct {
	ID            uint64    `json:"id"`
	TicketCode    string    `json:"ticket_code"`
	AmountCents   uint32    `json:"amount_cents"`
	PaymentStatus string    `json:"payment_status"`
	BookingStatus string    `json:"booking_status"`
	BookingDate   time.Time `json:"booking_date"`
	UserID        uint64    `json:"user_id"`
	MatchID       uint64    `json:"match_id"`
	TeamA         string    `json:"team_a"`
	TeamB         string    `json:"team_b"`
	MatchDate     time.Time `json:"match_date"`
	StadiumName   string    `json:"stadium_name"`
	StandName     string    `json:"stand_name"`
	RowLabel      string    `json:"row_label"`
	SeatNumber    string    `json:"seat_number"`
}

// bookingDetailQuery joins a booking to its match, seat, stand and
// stadium.  ListByUser and ListAll append their own WHERE clause.
const bookingDetailQuery = `SELECT b.id, b.ticket_code, b.amount_cents, b.payment_status,
	       b.booking_status, b.booking_date, b.user_id,
	       m.id, m.team_a, m.team_b, m.match_date,
	       sd.name, st.name, se.row_label, se.seat_number
	FROM bookings b
	JOIN matches m      ON m.id = b.match_id
	JOIN match_seats ms ON ms.id = b.match_seat_id
	JOIN seats se       ON se.id = ms.seat_id
	JOIN stands st      ON st.id = se.stand_id
	JOIN stadiums sd    ON sd.id = st.stadium_id`

// BookingRepo provides methods to work with the booking ledger.  The
// Tx variants participate in the booking engine's transaction together
// with MatchSeatRepo's reserve and release.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// CreateTx inserts a booking inside tx and reads the stored row back.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO bookings
	           (user_id, match_id, match_seat_id, amount_cents, payment_status, booking_status, ticket_code, booking_date)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		b.UserID, b.MatchID, b.MatchSeatID, b.AmountCents,
		b.PaymentStatus, b.BookingStatus, b.TicketCode, b.BookingDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	const sel = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	return scanBooking(tx.QueryRowContext(ctx, sel, id), b)
}

// GetByID retrieves a booking by its ID.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	var b model.Booking
	err := scanBooking(r.db.QueryRowContext(ctx, q, id), &b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetTx retrieves a booking inside tx, locking the row against a
// concurrent cancel of the same booking.
func (r *BookingRepo) GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ? FOR UPDATE`
	var b model.Booking
	err := scanBooking(tx.QueryRowContext(ctx, q, id), &b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetOwnedTx retrieves a booking inside tx like GetTx and additionally
// verifies it belongs to userID, returning ErrForbidden when it does
// not.  The fan cancel path goes through this so ownership is decided
// against the locked row, not a stale read.
func (r *BookingRepo) GetOwnedTx(ctx context.Context, tx *sql.Tx, id, userID uint64) (*model.Booking, error) {
	b, err := r.GetTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// CancelTx flips a confirmed booking to cancelled inside tx and marks
// the payment refunded.  Zero affected rows means the booking was
// already cancelled; the caller decides whether that is an error.
func (r *BookingRepo) CancelTx(ctx context.Context, tx *sql.Tx, id uint64) (bool, error) {
	const q = `UPDATE bookings
	           SET booking_status = ?, payment_status = ?
	           WHERE id = ? AND booking_status = ?`
	res, err := tx.ExecContext(ctx, q, model.BookingCancelled, model.PaymentRefunded, id, model.BookingConfirmed)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ListByUser retrieves one fan's bookings, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = bookingDetailQuery + ` WHERE b.user_id = ? ORDER BY b.booking_date DESC, b.id DESC`
	return r.queryDetails(ctx, q, userID)
}

// ListAll retrieves every booking in the ledger, newest first.
func (r *BookingRepo) ListAll(ctx context.Context) ([]BookingDetail, error) {
	const q = bookingDetailQuery + ` ORDER BY b.booking_date DESC, b.id DESC`
	return r.queryDetails(ctx, q)
}

func (r *BookingRepo) queryDetails(ctx context.Context, q string, args ...any) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]BookingDetail, 0)
	for rows.Next() {
		var d BookingDetail
		if err := rows.Scan(&d.ID, &d.TicketCode, &d.AmountCents, &d.PaymentStatus,
			&d.BookingStatus, &d.BookingDate, &d.UserID,
			&d.MatchID, &d.TeamA, &d.TeamB, &d.MatchDate,
			&d.StadiumName, &d.StandName, &d.RowLabel, &d.SeatNumber); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}
