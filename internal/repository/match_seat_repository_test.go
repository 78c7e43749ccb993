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

func newMockRepo(t *testing.T) (*MatchSeatRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMatchSeatRepo(db), mock
}

func matchSeatRows(id, matchID, seatID uint64, price uint32, status string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "match_id", "seat_id", "price_cents", "status", "created_at", "updated_at"}).
		AddRow(id, matchID, seatID, price, status, now, now)
}

func TestReserveTxFlipsAvailableSeat(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE match_seats SET status").
		WithArgs(model.MatchSeatBooked, uint64(7), model.MatchSeatAvailable).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM match_seats WHERE id").
		WithArgs(uint64(7)).
		WillReturnRows(matchSeatRows(7, 3, 15, 7500, model.MatchSeatBooked))

	tx, err := repo.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	ms, err := repo.ReserveTx(ctx, tx, 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), ms.ID)
	assert.Equal(t, uint32(7500), ms.PriceCents)
	assert.Equal(t, model.MatchSeatBooked, ms.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveTxLoserGetsSeatUnavailable(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	// The conditional update matches zero rows because the first
	// booking already flipped the seat; the loser must see the
	// conflict and no booking insert may follow.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE match_seats SET status").
		WithArgs(model.MatchSeatBooked, uint64(7), model.MatchSeatAvailable).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM match_seats WHERE id").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.MatchSeatBooked))
	mock.ExpectRollback()

	tx, err := repo.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	ms, err := repo.ReserveTx(ctx, tx, 7)
	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.Nil(t, ms)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveTxMissingSeat(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE match_seats SET status").
		WithArgs(model.MatchSeatBooked, uint64(99), model.MatchSeatAvailable).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM match_seats WHERE id").
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	tx, err := repo.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	_, err = repo.ReserveTx(ctx, tx, 99)
	assert.ErrorIs(t, err, ErrMatchSeatNotFound)
}

func TestReleaseTxRequiresBookedSeat(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE match_seats SET status").
		WithArgs(model.MatchSeatAvailable, uint64(7), model.MatchSeatBooked).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := repo.DB().BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.ReleaseTx(ctx, tx, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertTxReportsCreatedVersusUpdated(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	// MySQL reports 1 affected row for an insert and 2 for an update
	// through ON DUPLICATE KEY.
	mock.ExpectExec("INSERT INTO match_seats").
		WithArgs(uint64(3), uint64(15), uint32(5000), model.MatchSeatAvailable).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO match_seats").
		WithArgs(uint64(3), uint64(15), uint32(6000), model.MatchSeatAvailable).
		WillReturnResult(sqlmock.NewResult(1, 2))

	tx, err := repo.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	created, err := repo.UpsertTx(ctx, tx, &model.MatchSeat{MatchID: 3, SeatID: 15, PriceCents: 5000, Status: model.MatchSeatAvailable})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.UpsertTx(ctx, tx, &model.MatchSeat{MatchID: 3, SeatID: 15, PriceCents: 6000, Status: model.MatchSeatAvailable})
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertTxNeverReleasesBookedStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	// The statement itself must carry the booked guard: a booking that
	// commits between the handler's pre-check and this upsert keeps its
	// status, only the price moves.
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO match_seats .+ ON DUPLICATE KEY UPDATE price_cents = VALUES\(price_cents\), status = IF\(status = 'booked', status, VALUES\(status\)\)`).
		WithArgs(uint64(3), uint64(15), uint32(9000), model.MatchSeatAvailable).
		WillReturnResult(sqlmock.NewResult(0, 2))

	tx, err := repo.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	created, err := repo.UpsertTx(ctx, tx, &model.MatchSeat{MatchID: 3, SeatID: 15, PriceCents: 9000, Status: model.MatchSeatAvailable})
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMultiplierTx(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO match_seats").
		WithArgs(uint64(3), 1.5, model.MatchSeatAvailable, uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectQuery("SELECT COUNT(.+) FROM match_seats ms").
		WithArgs(uint64(3), uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	tx, err := repo.DB().BeginTx(ctx, nil)
	require.NoError(t, err)

	touched, err := repo.ApplyMultiplierTx(ctx, tx, 3, 2, 1.5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), touched)
}
