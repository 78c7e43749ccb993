package repository // repository defines data access for matches

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wicketgate/cricket-ticketing/internal/model"
)

// ErrMatchNotFound is returned when a match lookup yields no rows.
var ErrMatchNotFound = errors.New("match not found")

// matchColumns is the canonical column list shared by all match queries.
const matchColumns = `id, stadium_id, team_a, team_b, match_date, description, status, created_at, updated_at`

// scanMatch scans a match row in matchColumns order.
func scanMatch(row interface{ Scan(...any) error }, m *model.Match) error {
	return row.Scan(&m.ID, &m.StadiumID, &m.TeamA, &m.TeamB, &m.MatchDate, &m.Description, &m.Status, &m.CreatedAt, &m.UpdatedAt)
}

// MatchRepo provides methods to work with scheduled matches.
type MatchRepo struct {
	db *sql.DB
}

// NewMatchRepo constructs a MatchRepo with the given DB handle.
func NewMatchRepo(db *sql.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

// Create inserts a match and reads the stored row back so defaulted
// columns are returned to the caller.
func (r *MatchRepo) Create(ctx context.Context, m *model.Match) error {
	const q = `INSERT INTO matches (stadium_id, team_a, team_b, match_date, description, status)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.StadiumID, m.TeamA, m.TeamB, m.MatchDate, m.Description, m.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	const sel = `SELECT ` + matchColumns + ` FROM matches WHERE id = ?`
	return scanMatch(r.db.QueryRowContext(ctx, sel, id), m)
}

// GetByID retrieves a match by its ID.
func (r *MatchRepo) GetByID(ctx context.Context, id uint64) (*model.Match, error) {
	const q = `SELECT ` + matchColumns + ` FROM matches WHERE id = ?`
	var m model.Match
	err := scanMatch(r.db.QueryRowContext(ctx, q, id), &m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByIDWithStadium retrieves a match joined with its stadium's name
// and location for detail views.
func (r *MatchRepo) GetByIDWithStadium(ctx context.Context, id uint64) (*model.MatchWithStadium, error) {
	const q = `SELECT m.id, m.stadium_id, m.team_a, m.team_b, m.match_date, m.description,
	                  m.status, m.created_at, m.updated_at, s.name, s.location
	           FROM matches m
	           JOIN stadiums s ON s.id = m.stadium_id
	           WHERE m.id = ?`
	var mw model.MatchWithStadium
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&mw.ID, &mw.StadiumID, &mw.TeamA, &mw.TeamB, &mw.MatchDate, &mw.Description,
		&mw.Status, &mw.CreatedAt, &mw.UpdatedAt, &mw.StadiumName, &mw.StadiumLocation,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mw, nil
}

// List retrieves all matches ordered by date, soonest first.
func (r *MatchRepo) List(ctx context.Context) ([]model.Match, error) {
	const q = `SELECT ` + matchColumns + ` FROM matches ORDER BY match_date ASC`
	return r.queryMatches(ctx, q)
}

// ListUpcoming retrieves matches that have not started yet, ordered by
// date so fans see the soonest fixture first.
func (r *MatchRepo) ListUpcoming(ctx context.Context) ([]model.Match, error) {
	const q = `SELECT ` + matchColumns + ` FROM matches
	           WHERE status = '` + model.MatchUpcoming + `'
	           ORDER BY match_date ASC`
	return r.queryMatches(ctx, q)
}

func (r *MatchRepo) queryMatches(ctx context.Context, q string, args ...any) ([]model.Match, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Match, 0)
	for rows.Next() {
		var m model.Match
		if err := scanMatch(rows, &m); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// Update overwrites a match's teams, date and status, then reads the
// row back.  A missing id surfaces as ErrMatchNotFound.
func (r *MatchRepo) Update(ctx context.Context, m *model.Match) error {
	const q = `UPDATE matches SET team_a = ?, team_b = ?, match_date = ?, description = ?, status = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, m.TeamA, m.TeamB, m.MatchDate, m.Description, m.Status, m.ID); err != nil {
		return err
	}
	const sel = `SELECT ` + matchColumns + ` FROM matches WHERE id = ?`
	err := scanMatch(r.db.QueryRowContext(ctx, sel, m.ID), m)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMatchNotFound
	}
	return err
}

// Delete removes a match and its per-match seat rows.  Matches with
// bookings are never deleted; the ledger must keep pointing at a real
// fixture, so the caller gets ErrConflict instead.
func (r *MatchRepo) Delete(ctx context.Context, id uint64) error {
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
	err = tx.QueryRowContext(ctx, `SELECT id FROM matches WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMatchNotFound
	}
	if err != nil {
		return err
	}

	var booked int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE match_id = ?`, id).Scan(&booked); err != nil {
		return err
	}
	if booked > 0 {
		return ErrConflict
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM match_seats WHERE match_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE id = ?`, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
