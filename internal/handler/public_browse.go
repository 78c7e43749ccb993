// This file defines the public browsing API: unauthenticated users can
// list upcoming matches, inspect a fixture's venue and walk the seat
// map of any stand.  Seat maps are always read fresh from the database
// so a fan never books against a cached view.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/model"
	"github.com/wicketgate/cricket-ticketing/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated
// browsing.
type PublicHandler struct {
	StadiumRepo   *repository.StadiumRepo
	StandRepo     *repository.StandRepo
	MatchRepo     *repository.MatchRepo
	MatchSeatRepo *repository.MatchSeatRepo
}

// seatMapRow is one row of a stand's seat map, seats in display order.
type seatMapRow struct {
	Row   string                `json:"row"`
	Seats []model.EffectiveSeat `json:"seats"`
}

// buildSeatMap groups effective seats by row label, preserving the
// repository's ordering within and across rows.
func buildSeatMap(seats []model.EffectiveSeat) []seatMapRow {
	rows := make([]seatMapRow, 0)
	for _, s := range seats {
		if n := len(rows); n == 0 || rows[n-1].Row != s.RowLabel {
			rows = append(rows, seatMapRow{Row: s.RowLabel})
		}
		rows[len(rows)-1].Seats = append(rows[len(rows)-1].Seats, s)
	}
	return rows
}

// ListMatches handles GET /v1/matches and returns upcoming fixtures.
func (h *PublicHandler) ListMatches(c echo.Context) error {
	items, err := h.MatchRepo.ListUpcoming(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetMatch handles GET /v1/matches/:id and returns the fixture with
// its stadium and the stands a fan can pick a seat from.
func (h *PublicHandler) GetMatch(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	m, err := h.MatchRepo.GetByIDWithStadium(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	stands, err := h.StandRepo.ListByStadium(ctx, m.StadiumID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"match":  m,
		"stands": stands,
	})
}

// GetSeatMap handles GET /v1/matches/:id/stands/:standID/seats.  Every
// seat of the stand comes back with its effective price and status
// for this match, grouped by row for rendering.
func (h *PublicHandler) GetSeatMap(c echo.Context) error {
	matchID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid match id"})
	}
	standID, ok := pathID(c, "standID")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid stand id"})
	}
	ctx := c.Request().Context()
	m, err := h.MatchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	stand, err := h.StandRepo.GetByID(ctx, standID)
	if err != nil {
		if errors.Is(err, repository.ErrStandNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stand not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if stand.StadiumID != m.StadiumID {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stand does not belong to the match's stadium"})
	}
	seats, err := h.MatchSeatRepo.ListEffectiveByStand(ctx, matchID, standID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"match_id": matchID,
		"stand":    stand,
		"rows":     buildSeatMap(seats),
	})
}

// ListStadiums handles GET /v1/stadiums for public venue browsing.
func (h *PublicHandler) ListStadiums(c echo.Context) error {
	items, err := h.StadiumRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
