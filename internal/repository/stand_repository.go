package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wicketgate/cricket-ticketing/internal/model"
)

// ErrStandNotFound is returned when a stand lookup yields no rows.
var ErrStandNotFound = errors.New("stand not found")

// StandRepo provides persistence for stands.  A stand is a seating
// section of a stadium; its base_price_cents is the default seat
// price used whenever a match has no per-seat override.
type StandRepo struct {
	db *sql.DB
}

// NewStandRepo constructs a StandRepo with the given DB handle.
func NewStandRepo(db *sql.DB) *StandRepo {
	return &StandRepo{db: db}
}

const standColumns = `id, stadium_id, name, category, capacity, base_price_cents, description, created_at, updated_at`

func scanStand(row interface{ Scan(...any) error }, s *model.Stand) error {
	return row.Scan(&s.ID, &s.StadiumID, &s.Name, &s.Category, &s.Capacity, &s.BasePriceCents, &s.Description, &s.CreatedAt, &s.UpdatedAt)
}

// Create inserts a new stand and reads the row back to populate defaults.
func (r *StandRepo) Create(ctx context.Context, s *model.Stand) error {
	const q = `INSERT INTO stands (stadium_id, name, category, capacity, base_price_cents, description)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.StadiumID, s.Name, s.Category, s.Capacity, s.BasePriceCents, s.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	err = scanStand(r.db.QueryRowContext(ctx, `SELECT `+standColumns+` FROM stands WHERE id = ?`, s.ID), s)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStandNotFound
	}
	return err
}

// GetByID retrieves a stand by its ID.
func (r *StandRepo) GetByID(ctx context.Context, id uint64) (*model.Stand, error) {
	var s model.Stand
	err := scanStand(r.db.QueryRowContext(ctx, `SELECT `+standColumns+` FROM stands WHERE id = ?`, id), &s)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStandNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByStadium returns the stands of a stadium ordered by name ascending.
func (r *StandRepo) ListByStadium(ctx context.Context, stadiumID uint64) ([]model.Stand, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+standColumns+` FROM stands WHERE stadium_id = ? ORDER BY name ASC`, stadiumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Stand, 0)
	for rows.Next() {
		var s model.Stand
		if err := scanStand(rows, &s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Update overwrites the mutable columns of a stand and reads the row
// back.  A missing row surfaces as ErrStandNotFound.
func (r *StandRepo) Update(ctx context.Context, s *model.Stand) error {
	const q = `UPDATE stands SET name = ?, category = ?, capacity = ?, base_price_cents = ?, description = ?
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, s.Name, s.Category, s.Capacity, s.BasePriceCents, s.Description, s.ID); err != nil {
		return err
	}
	err := scanStand(r.db.QueryRowContext(ctx, `SELECT `+standColumns+` FROM stands WHERE id = ?`, s.ID), s)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStandNotFound
	}
	return err
}

// Delete removes a stand and cascades through its seats and their
// match_seats inside one transaction.  Blocked with ErrConflict while
// any booking references a seat of this stand.
func (r *StandRepo) Delete(ctx context.Context, id uint64) error {
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
	err = tx.QueryRowContext(ctx, `SELECT id FROM stands WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStandNotFound
	}
	if err != nil {
		return err
	}

	var bookings int
	const bq = `SELECT COUNT(*)
	            FROM bookings b
	            JOIN match_seats ms ON ms.id = b.match_seat_id
	            JOIN seats se ON se.id = ms.seat_id
	            WHERE se.stand_id = ?`
	if err := tx.QueryRowContext(ctx, bq, id).Scan(&bookings); err != nil {
		return err
	}
	if bookings > 0 {
		return ErrConflict
	}

	steps := []string{
		`DELETE ms FROM match_seats ms JOIN seats se ON se.id = ms.seat_id WHERE se.stand_id = ?`,
		`DELETE FROM seats WHERE stand_id = ?`,
		`DELETE FROM stands WHERE id = ?`,
	}
	for _, q := range steps {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
