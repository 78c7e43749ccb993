package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wicketgate/cricket-ticketing/internal/model"
)

// ErrStadiumNotFound is returned when a stadium lookup yields no rows.
var ErrStadiumNotFound = errors.New("stadium not found")

// StadiumRepo provides persistence for stadiums.
type StadiumRepo struct {
	db *sql.DB
}

// NewStadiumRepo constructs a StadiumRepo with the given DB handle.
func NewStadiumRepo(db *sql.DB) *StadiumRepo {
	return &StadiumRepo{db: db}
}

// Create inserts a new stadium and reads the row back so DB defaults
// (timestamps) are populated on the struct.
func (r *StadiumRepo) Create(ctx context.Context, s *model.Stadium) error {
	const q = `INSERT INTO stadiums (name, location, capacity, description, image_url)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Location, s.Capacity, s.Description, s.ImageURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return r.scanOne(ctx, s.ID, s)
}

// GetByID retrieves a stadium by its ID.  It returns ErrStadiumNotFound
// when there is no matching row.
func (r *StadiumRepo) GetByID(ctx context.Context, id uint64) (*model.Stadium, error) {
	var s model.Stadium
	if err := r.scanOne(ctx, id, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StadiumRepo) scanOne(ctx context.Context, id uint64, s *model.Stadium) error {
	const q = `SELECT id, name, location, capacity, description, image_url, created_at, updated_at
	           FROM stadiums WHERE id = ?`
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID, &s.Name, &s.Location, &s.Capacity, &s.Description, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStadiumNotFound
	}
	return err
}

// List returns all stadiums ordered by name ascending.
func (r *StadiumRepo) List(ctx context.Context) ([]model.Stadium, error) {
	const q = `SELECT id, name, location, capacity, description, image_url, created_at, updated_at
	           FROM stadiums ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Stadium, 0)
	for rows.Next() {
		var s model.Stadium
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &s.Capacity, &s.Description, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Update overwrites the mutable columns of a stadium.  It returns
// ErrStadiumNotFound when the row does not exist.
func (r *StadiumRepo) Update(ctx context.Context, s *model.Stadium) error {
	const q = `UPDATE stadiums SET name = ?, location = ?, capacity = ?, description = ?, image_url = ?
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, s.Name, s.Location, s.Capacity, s.Description, s.ImageURL, s.ID); err != nil {
		return err
	}
	// Read the row back; a missing id surfaces as ErrStadiumNotFound here
	// (RowsAffected cannot tell a missing row from a no-op update).
	return r.scanOne(ctx, s.ID, s)
}

// Delete removes a stadium and cascades through its stands, seats,
// matches and match_seats inside one transaction.  The delete is
// blocked with ErrConflict while any booking references the subtree:
// booking rows are history and must never be cascaded away.
func (r *StadiumRepo) Delete(ctx context.Context, id uint64) error {
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
	err = tx.QueryRowContext(ctx, `SELECT id FROM stadiums WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrStadiumNotFound
	}
	if err != nil {
		return err
	}

	var bookings int
	const bq = `SELECT COUNT(*) FROM bookings b JOIN matches m ON m.id = b.match_id WHERE m.stadium_id = ?`
	if err := tx.QueryRowContext(ctx, bq, id).Scan(&bookings); err != nil {
		return err
	}
	if bookings > 0 {
		return ErrConflict
	}

	steps := []string{
		`DELETE ms FROM match_seats ms JOIN matches m ON m.id = ms.match_id WHERE m.stadium_id = ?`,
		`DELETE FROM matches WHERE stadium_id = ?`,
		`DELETE se FROM seats se JOIN stands st ON st.id = se.stand_id WHERE st.stadium_id = ?`,
		`DELETE FROM stands WHERE stadium_id = ?`,
		`DELETE FROM stadiums WHERE id = ?`,
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
