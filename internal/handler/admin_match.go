package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/model"
	"github.com/wicketgate/cricket-ticketing/internal/repository"
)

type matchReq struct {
	StadiumID   uint64  `json:"stadium_id"`
	TeamA       string  `json:"team_a"`
	TeamB       string  `json:"team_b"`
	MatchDate   string  `json:"match_date"` // RFC 3339
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

func (b matchReq) parse() (teamA, teamB string, date time.Time, err error) {
	teamA = strings.TrimSpace(b.TeamA)
	teamB = strings.TrimSpace(b.TeamB)
	if teamA == "" || teamB == "" {
		return "", "", time.Time{}, errors.New("team_a and team_b are required")
	}
	date, err = time.Parse(time.RFC3339, b.MatchDate)
	if err != nil {
		return "", "", time.Time{}, errors.New("match_date must be RFC 3339")
	}
	return teamA, teamB, date.UTC(), nil
}

// CreateMatch handles POST /v1/admin/matches.
func (h *AdminHandler) CreateMatch(c echo.Context) error {
	var body matchReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	teamA, teamB, date, err := body.parse()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if _, err := h.StadiumRepo.GetByID(c.Request().Context(), body.StadiumID); err != nil {
		if errors.Is(err, repository.ErrStadiumNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stadium not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	status := body.Status
	if status == "" {
		status = model.MatchUpcoming
	}
	if !model.ValidMatchStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	m := &model.Match{
		StadiumID:   body.StadiumID,
		TeamA:       teamA,
		TeamB:       teamB,
		MatchDate:   date,
		Description: body.Description,
		Status:      status,
	}
	if err := h.MatchRepo.Create(c.Request().Context(), m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create match"})
	}
	return c.JSON(http.StatusCreated, m)
}

// ListMatches handles GET /v1/admin/matches and returns every fixture
// regardless of status.
func (h *AdminHandler) ListMatches(c echo.Context) error {
	items, err := h.MatchRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateMatch handles PUT /v1/admin/matches/:id.  The stadium is fixed
// at creation; only teams, date, description and status move.
func (h *AdminHandler) UpdateMatch(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body matchReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	teamA, teamB, date, err := body.parse()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if !model.ValidMatchStatus(body.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	m := &model.Match{
		ID:          id,
		TeamA:       teamA,
		TeamB:       teamB,
		MatchDate:   date,
		Description: body.Description,
		Status:      body.Status,
	}
	if err := h.MatchRepo.Update(c.Request().Context(), m); err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteMatch handles DELETE /v1/admin/matches/:id.  A match with
// bookings cannot be deleted; cancel it instead so the ledger keeps
// its references.
func (h *AdminHandler) DeleteMatch(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.MatchRepo.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrMatchNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "match has bookings"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
