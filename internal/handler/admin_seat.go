package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/model"
	"github.com/wicketgate/cricket-ticketing/internal/repository"
)

// GenerateSeats handles POST /v1/admin/stands/:id/seats/generate.  It
// expands a rectangular grid request into seat rows and inserts them
// in batches.  When a later batch fails, the earlier batches stay:
// the response reports how many seats made it so the admin can clean
// up or retry the remainder.
func (h *AdminHandler) GenerateSeats(c echo.Context) error {
	standID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.StandRepo.GetByID(c.Request().Context(), standID); err != nil {
		if errors.Is(err, repository.ErrStandNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stand not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var body struct {
		RowPrefix   string `json:"row_prefix"`
		StartRow    int    `json:"start_row"`
		EndRow      int    `json:"end_row"`
		SeatsPerRow int    `json:"seats_per_row"`
		Status      string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := strings.TrimSpace(body.Status)
	if status == "" {
		status = model.SeatAvailable
	}

	seats, err := model.BuildSeatGrid(model.SeatGridSpec{
		StandID:     standID,
		RowPrefix:   strings.TrimSpace(body.RowPrefix),
		StartRow:    body.StartRow,
		EndRow:      body.EndRow,
		SeatsPerRow: body.SeatsPerRow,
		Status:      status,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid grid bounds"})
	}

	inserted, err := h.SeatRepo.CreateBulk(c.Request().Context(), seats)
	if err != nil {
		// Partial success: report what landed before the failure.
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":    "seat generation stopped early",
			"inserted": inserted,
			"expected": len(seats),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{"inserted": inserted})
}

// ListSeats handles GET /v1/admin/stands/:id/seats.
func (h *AdminHandler) ListSeats(c echo.Context) error {
	standID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.StandRepo.GetByID(c.Request().Context(), standID); err != nil {
		if errors.Is(err, repository.ErrStandNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stand not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items, err := h.SeatRepo.ListByStand(c.Request().Context(), standID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateSeat handles PUT /v1/admin/seats/:id and edits a seat's labels
// or static status.
func (h *AdminHandler) UpdateSeat(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		RowLabel   string `json:"row_label"`
		SeatNumber string `json:"seat_number"`
		Status     string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rowLabel := strings.TrimSpace(body.RowLabel)
	seatNumber := strings.TrimSpace(body.SeatNumber)
	if rowLabel == "" || seatNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "row_label and seat_number are required"})
	}
	if !model.ValidSeatStatus(body.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	s := &model.Seat{ID: id, RowLabel: rowLabel, SeatNumber: seatNumber, Status: body.Status}
	if err := h.SeatRepo.Update(c.Request().Context(), s); err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// DeleteSeat handles DELETE /v1/admin/seats/:id.  A seat that is
// booked for any match, or referenced by a booking, is refused.
func (h *AdminHandler) DeleteSeat(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.SeatRepo.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat is booked"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
