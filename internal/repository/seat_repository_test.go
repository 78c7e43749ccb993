package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicketgate/cricket-ticketing/internal/model"
)

func gridSeats(n int) []model.Seat {
	seats := make([]model.Seat, 0, n)
	for i := 0; i < n; i++ {
		seats = append(seats, model.Seat{
			StandID:    1,
			RowLabel:   "A1",
			SeatNumber: strconv.Itoa(i + 1),
			Status:     model.SeatAvailable,
		})
	}
	return seats
}

func TestCreateBulkSplitsIntoBatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewSeatRepo(db)

	// 150 seats must land as one batch of 100 and one of 50.
	mock.ExpectExec("INSERT INTO seats").
		WillReturnResult(sqlmock.NewResult(1, 100))
	mock.ExpectExec("INSERT INTO seats").
		WillReturnResult(sqlmock.NewResult(101, 50))

	inserted, err := repo.CreateBulk(context.Background(), gridSeats(150))
	require.NoError(t, err)
	assert.Equal(t, 150, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBulkReportsPartialSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewSeatRepo(db)

	boom := errors.New("duplicate entry")
	mock.ExpectExec("INSERT INTO seats").
		WillReturnResult(sqlmock.NewResult(1, 100))
	mock.ExpectExec("INSERT INTO seats").
		WillReturnError(boom)

	// The first batch stays committed; the caller learns how far the
	// generation got.
	inserted, err := repo.CreateBulk(context.Background(), gridSeats(150))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 100, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeatDeleteBlockedWhileBooked(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewSeatRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM seats WHERE id").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery("SELECT COUNT(.+) FROM match_seats ms").
		WithArgs(uint64(5), model.MatchSeatBooked).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err = repo.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
