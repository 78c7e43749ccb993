package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicketgate/cricket-ticketing/internal/model"
)

func newBookingRepo(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBookingRepo(db), mock
}

func bookingRows(id uint64, status string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "user_id", "match_id", "match_seat_id", "amount_cents",
		"payment_status", "booking_status", "ticket_code", "booking_date", "created_at", "updated_at",
	}).AddRow(id, 9, 3, 7, 7500, model.PaymentCompleted, status, "AB12CD34", now, now, now)
}

func TestCreateTxInsertsAndReadsBack(t *testing.T) {
	repo, mock := newBookingRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(41, 1))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(int64(41)).
		WillReturnRows(bookingRows(41, model.BookingConfirmed))

	tx, err := repo.db.BeginTx(ctx, nil)
	require.NoError(t, err)

	b := &model.Booking{
		UserID:        9,
		MatchID:       3,
		MatchSeatID:   7,
		AmountCents:   7500,
		PaymentStatus: model.PaymentCompleted,
		BookingStatus: model.BookingConfirmed,
		TicketCode:    "AB12CD34",
		BookingDate:   time.Now().UTC(),
	}
	require.NoError(t, repo.CreateTx(ctx, tx, b))
	assert.Equal(t, uint64(41), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelTxFlipsConfirmedOnly(t *testing.T) {
	repo, mock := newBookingRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings").
		WithArgs(model.BookingCancelled, model.PaymentRefunded, uint64(41), model.BookingConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Cancelling again matches zero rows: the status guard makes the
	// operation a detectable no-op instead of a double refund.
	mock.ExpectExec("UPDATE bookings").
		WithArgs(model.BookingCancelled, model.PaymentRefunded, uint64(41), model.BookingConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := repo.db.BeginTx(ctx, nil)
	require.NoError(t, err)

	cancelled, err := repo.CancelTx(ctx, tx, 41)
	require.NoError(t, err)
	assert.True(t, cancelled)

	cancelled, err = repo.CancelTx(ctx, tx, 41)
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOwnedTxRejectsOtherUsers(t *testing.T) {
	repo, mock := newBookingRepo(t)
	ctx := context.Background()

	// bookingRows stores user_id 9; user 8 must not be able to touch it.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = (.+) FOR UPDATE").
		WithArgs(uint64(41)).
		WillReturnRows(bookingRows(41, model.BookingConfirmed))

	tx, err := repo.db.BeginTx(ctx, nil)
	require.NoError(t, err)

	b, err := repo.GetOwnedTx(ctx, tx, 41, 8)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOwnedTxReturnsOwnBooking(t *testing.T) {
	repo, mock := newBookingRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = (.+) FOR UPDATE").
		WithArgs(uint64(41)).
		WillReturnRows(bookingRows(41, model.BookingConfirmed))

	tx, err := repo.db.BeginTx(ctx, nil)
	require.NoError(t, err)

	b, err := repo.GetOwnedTx(ctx, tx, 41, 9)
	require.NoError(t, err)
	assert.Equal(t, uint64(41), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(uint64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "match_id", "match_seat_id", "amount_cents",
			"payment_status", "booking_status", "ticket_code", "booking_date", "created_at", "updated_at",
		}))

	b, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}
