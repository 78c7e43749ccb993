package repository // repository defines data access for per-match seat state

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wicketgate/cricket-ticketing/internal/model"
)

// ErrMatchSeatNotFound is returned when a match seat lookup yields no rows.
var ErrMatchSeatNotFound = errors.New("match seat not found")

// matchSeatColumns is the canonical column list shared by all match seat queries.
const matchSeatColumns = `id, match_id, seat_id, price_cents, status, created_at, updated_at`

// scanMatchSeat scans a match seat row in matchSeatColumns order.
func scanMatchSeat(row interface{ Scan(...any) error }, ms *model.MatchSeat) error {
	return row.Scan(&ms.ID, &ms.MatchID, &ms.SeatID, &ms.PriceCents, &ms.Status, &ms.CreatedAt, &ms.UpdatedAt)
}

// MatchSeatRepo provides methods to work with match_seats rows: the
// priced, bookable seat-in-match records.  The mutating Tx methods
// take an explicit *sql.Tx because the booking handler composes them
// with a booking insert in one transaction.
type MatchSeatRepo struct {
	db *sql.DB
}

// NewMatchSeatRepo constructs a MatchSeatRepo with the given DB handle.
func NewMatchSeatRepo(db *sql.DB) *MatchSeatRepo {
	return &MatchSeatRepo{db: db}
}

// DB exposes the underlying handle so handlers can open transactions
// spanning match seats and bookings.
func (r *MatchSeatRepo) DB() *sql.DB {
	return r.db
}

// GetByID retrieves a match seat by its ID.
func (r *MatchSeatRepo) GetByID(ctx context.Context, id uint64) (*model.MatchSeat, error) {
	const q = `SELECT ` + matchSeatColumns + ` FROM match_seats WHERE id = ?`
	var ms model.MatchSeat
	err := scanMatchSeat(r.db.QueryRowContext(ctx, q, id), &ms)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchSeatNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ms, nil
}

// GetByMatchAndSeat retrieves the match seat for one (match, seat)
// pair, or ErrMatchSeatNotFound when the pricer has not materialized it.
func (r *MatchSeatRepo) GetByMatchAndSeat(ctx context.Context, matchID, seatID uint64) (*model.MatchSeat, error) {
	const q = `SELECT ` + matchSeatColumns + ` FROM match_seats WHERE match_id = ? AND seat_id = ?`
	var ms model.MatchSeat
	err := scanMatchSeat(r.db.QueryRowContext(ctx, q, matchID, seatID), &ms)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchSeatNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ms, nil
}

// ListEffectiveByStand resolves every seat of a stand against the
// match's persisted match_seats rows.  Seats with no row fall back to
// the stand's base price and their static status; persisted rows win.
// Results are ordered by row label then numeric seat number so the
// grid renders stable.
func (r *MatchSeatRepo) ListEffectiveByStand(ctx context.Context, matchID, standID uint64) ([]model.EffectiveSeat, error) {
	const q = `SELECT se.id, se.row_label, se.seat_number, se.status, st.base_price_cents,
	                  ms.id, ms.price_cents, ms.status
	           FROM seats se
	           JOIN stands st ON st.id = se.stand_id
	           LEFT JOIN match_seats ms ON ms.seat_id = se.id AND ms.match_id = ?
	           WHERE se.stand_id = ?
	           ORDER BY se.row_label ASC, CAST(se.seat_number AS UNSIGNED) ASC, se.seat_number ASC`
	rows, err := r.db.QueryContext(ctx, q, matchID, standID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.EffectiveSeat, 0)
	for rows.Next() {
		var (
			es         model.EffectiveSeat
			seatStatus string
			basePrice  uint32
			msID       sql.NullInt64
			msPrice    sql.NullInt64
			msStatus   sql.NullString
		)
		if err := rows.Scan(&es.SeatID, &es.RowLabel, &es.SeatNumber, &seatStatus, &basePrice,
			&msID, &msPrice, &msStatus); err != nil {
			return nil, err
		}
		var ms *model.MatchSeat
		if msID.Valid {
			ms = &model.MatchSeat{
				ID:         uint64(msID.Int64),
				PriceCents: uint32(msPrice.Int64),
				Status:     msStatus.String,
			}
			es.MatchSeatID = ms.ID
		}
		es.PriceCents, es.Status = model.EffectiveSeatState(seatStatus, basePrice, ms)
		result = append(result, es)
	}
	return result, rows.Err()
}

// UpsertTx inserts or updates the match_seats row for one (match, seat)
// pair inside tx.  MySQL reports 1 affected row for a fresh insert and
// 2 for an update hitting the unique (match_id, seat_id) key, which is
// how the pricer counts created versus updated rows.
// The status clause guards itself: a row that is booked keeps its
// status no matter what the pricer sends, so a booking committed
// between the handler's pre-check and this statement can never be
// flipped back on sale.
func (r *MatchSeatRepo) UpsertTx(ctx context.Context, tx *sql.Tx, ms *model.MatchSeat) (created bool, err error) {
	const q = `INSERT INTO match_seats (match_id, seat_id, price_cents, status)
	           VALUES (?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	               price_cents = VALUES(price_cents),
	               status = IF(status = '` + model.MatchSeatBooked + `', status, VALUES(status))`
	res, err := tx.ExecContext(ctx, q, ms.MatchID, ms.SeatID, ms.PriceCents, ms.Status)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ApplyMultiplierTx materializes or reprices every seat of a stand for
// one match at factor times the stand's base price, rounded to the
// nearest cent.  Rows already booked keep their status; only the price
// is overwritten.  Returns the number of seats touched.
func (r *MatchSeatRepo) ApplyMultiplierTx(ctx context.Context, tx *sql.Tx, matchID, standID uint64, factor float64) (int64, error) {
	const q = `INSERT INTO match_seats (match_id, seat_id, price_cents, status)
	           SELECT ?, se.id, CAST(ROUND(st.base_price_cents * ?) AS UNSIGNED), ?
	           FROM seats se
	           JOIN stands st ON st.id = se.stand_id
	           WHERE se.stand_id = ?
	           ON DUPLICATE KEY UPDATE price_cents = VALUES(price_cents)`
	if _, err := tx.ExecContext(ctx, q, matchID, factor, model.MatchSeatAvailable, standID); err != nil {
		return 0, err
	}
	// RowsAffected counts updated rows double under ON DUPLICATE KEY, so
	// count the distinct seats afterwards instead.
	var touched int64
	const cq = `SELECT COUNT(*) FROM match_seats ms
	            JOIN seats se ON se.id = ms.seat_id
	            WHERE ms.match_id = ? AND se.stand_id = ?`
	if err := tx.QueryRowContext(ctx, cq, matchID, standID).Scan(&touched); err != nil {
		return 0, err
	}
	return touched, nil
}

// ReserveTx atomically flips one match seat from available to booked
// inside tx and returns the row as stored.  The conditional UPDATE is
// the booking guarantee: when two requests race over one seat the
// second one matches zero rows and gets ErrSeatUnavailable, so at most
// one booking can ever be created per seat per match.
func (r *MatchSeatRepo) ReserveTx(ctx context.Context, tx *sql.Tx, matchSeatID uint64) (*model.MatchSeat, error) {
	const q = `UPDATE match_seats SET status = ? WHERE id = ? AND status = ?`
	res, err := tx.ExecContext(ctx, q, model.MatchSeatBooked, matchSeatID, model.MatchSeatAvailable)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Zero rows means either the seat does not exist or somebody got
		// there first; tell the caller which.
		var status string
		err := tx.QueryRowContext(ctx, `SELECT status FROM match_seats WHERE id = ?`, matchSeatID).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchSeatNotFound
		}
		if err != nil {
			return nil, err
		}
		return nil, ErrSeatUnavailable
	}

	const sel = `SELECT ` + matchSeatColumns + ` FROM match_seats WHERE id = ?`
	var ms model.MatchSeat
	if err := scanMatchSeat(tx.QueryRowContext(ctx, sel, matchSeatID), &ms); err != nil {
		return nil, err
	}
	return &ms, nil
}

// ReleaseTx flips a booked match seat back to available inside tx.
// Used when a booking is cancelled so the seat goes back on sale.
func (r *MatchSeatRepo) ReleaseTx(ctx context.Context, tx *sql.Tx, matchSeatID uint64) error {
	const q = `UPDATE match_seats SET status = ? WHERE id = ? AND status = ?`
	res, err := tx.ExecContext(ctx, q, model.MatchSeatAvailable, matchSeatID, model.MatchSeatBooked)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMatchSeatNotFound
	}
	return nil
}
