package repository // repository defines data access for seats

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wicketgate/cricket-ticketing/internal/model"
)

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// SeatRepo provides methods to work with physical seats in the database.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// insertBatchSize bounds the number of rows per bulk INSERT so a large
// grid never exceeds the server's packet limit.
const insertBatchSize = 100

// Create inserts a single seat record.  On success the seat's ID is populated.
func (r *SeatRepo) Create(ctx context.Context, s *model.Seat) error {
	const q = `INSERT INTO seats (stand_id, row_label, seat_number, status)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.StandID, s.RowLabel, s.SeatNumber, s.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// CreateBulk inserts seats in batches of insertBatchSize.  A failing
// batch stops the loop but batches already committed stay committed;
// the number of seats inserted so far is returned alongside the error
// so the operator knows how much of the grid succeeded.
func (r *SeatRepo) CreateBulk(ctx context.Context, seats []model.Seat) (int, error) {
	inserted := 0
	for start := 0; start < len(seats); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(seats) {
			end = len(seats)
		}
		batch := seats[start:end]

		query := `INSERT INTO seats (stand_id, row_label, seat_number, status) VALUES `
		args := make([]interface{}, 0, len(batch)*4)
		for i, seat := range batch {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?)"
			args = append(args, seat.StandID, seat.RowLabel, seat.SeatNumber, seat.Status)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return inserted, err
		}
		inserted += len(batch)
	}
	return inserted, nil
}

// GetByID retrieves a seat by its ID.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	const q = `SELECT id, stand_id, row_label, seat_number, status, created_at, updated_at
	           FROM seats WHERE id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID, &s.StandID, &s.RowLabel, &s.SeatNumber, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSeatNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByStand retrieves all seats of a stand ordered by row label then
// seat number.  Seat numbers are string labels, so they are compared
// numerically via CAST to keep "10" after "9".
func (r *SeatRepo) ListByStand(ctx context.Context, standID uint64) ([]model.Seat, error) {
	const q = `SELECT id, stand_id, row_label, seat_number, status, created_at, updated_at
	           FROM seats
	           WHERE stand_id = ?
	           ORDER BY row_label ASC, CAST(seat_number AS UNSIGNED) ASC, seat_number ASC`
	rows, err := r.db.QueryContext(ctx, q, standID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Seat, 0)
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.StandID, &s.RowLabel, &s.SeatNumber, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Update overwrites a seat's row label, seat number and static status.
func (r *SeatRepo) Update(ctx context.Context, s *model.Seat) error {
	const q = `UPDATE seats SET row_label = ?, seat_number = ?, status = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, s.RowLabel, s.SeatNumber, s.Status, s.ID); err != nil {
		return err
	}
	const sel = `SELECT id, stand_id, row_label, seat_number, status, created_at, updated_at
	             FROM seats WHERE id = ?`
	err := r.db.QueryRowContext(ctx, sel, s.ID).Scan(
		&s.ID, &s.StandID, &s.RowLabel, &s.SeatNumber, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSeatNotFound
	}
	return err
}

// Delete removes a seat together with its match_seats rows.  The
// delete is blocked with ErrConflict while the seat is booked for any
// match or a booking references it: taken seats cannot vanish from
// under their tickets.
func (r *SeatRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var exists uint64
	err = tx.QueryRowContext(ctx, `SELECT id FROM seats WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSeatNotFound
	}
	if err != nil {
		return err
	}

	var taken int
	const tq = `SELECT COUNT(*) FROM match_seats ms
	            LEFT JOIN bookings b ON b.match_seat_id = ms.id
	            WHERE ms.seat_id = ? AND (ms.status = ? OR b.id IS NOT NULL)`
	if err := tx.QueryRowContext(ctx, tq, id, model.MatchSeatBooked).Scan(&taken); err != nil {
		return err
	}
	if taken > 0 {
		return ErrConflict
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM match_seats WHERE seat_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM seats WHERE id = ?`, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
