package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicketgate/cricket-ticketing/internal/model"
	"github.com/wicketgate/cricket-ticketing/internal/repository"
)

func newFanHandlerWithMock(t *testing.T) (*FanHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewFanHandler(
		repository.NewMatchRepo(db),
		repository.NewStandRepo(db),
		repository.NewSeatRepo(db),
		repository.NewMatchSeatRepo(db),
		repository.NewBookingRepo(db),
	), mock
}

func bookSeatContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(9))
	return c, rec
}

// A failed attempt still hands the caller a refreshed seat map so a
// stale "available" button corrects itself without another request.
func TestBookSeatFailureCarriesSeatMap(t *testing.T) {
	h, mock := newFanHandlerWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM match_seats WHERE id").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "match_id", "seat_id", "price_cents", "status", "created_at", "updated_at"}).
			AddRow(7, 3, 15, 7500, model.MatchSeatAvailable, now, now))
	mock.ExpectQuery("SELECT (.+) FROM seats WHERE id").
		WithArgs(uint64(15)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "stand_id", "row_label", "seat_number", "status", "created_at", "updated_at"}).
			AddRow(15, 2, "A1", "1", model.SeatAvailable, now, now))
	mock.ExpectQuery(`SELECT m\.id, m\.stadium_id`).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "stadium_id", "team_a", "team_b", "match_date", "description", "status", "created_at", "updated_at", "name", "location"}).
			AddRow(3, 1, "India", "Australia", now.Add(24*time.Hour), nil, model.MatchUpcoming, now, now, "Eden Gardens", "Kolkata"))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE match_seats SET status").
		WithArgs(model.MatchSeatBooked, uint64(7), model.MatchSeatAvailable).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM match_seats WHERE id").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "match_id", "seat_id", "price_cents", "status", "created_at", "updated_at"}).
			AddRow(7, 3, 15, 7500, model.MatchSeatBooked, now, now))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(errors.New("connection reset"))

	// The refreshed map is read from the pool after the insert fails.
	mock.ExpectQuery(`SELECT se\.id, se\.row_label`).
		WithArgs(uint64(3), uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "row_label", "seat_number", "status", "base_price_cents", "ms_id", "ms_price", "ms_status"}).
			AddRow(15, "A1", "1", model.SeatAvailable, 5000, 7, 7500, model.MatchSeatAvailable))
	mock.ExpectRollback()

	c, rec := bookSeatContext(t, `{"match_seat_id":7}`)
	require.NoError(t, h.BookSeat(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking failed")
	assert.Contains(t, rec.Body.String(), "seat_map")
	assert.NoError(t, mock.ExpectationsWereMet())
}
