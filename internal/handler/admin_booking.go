package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/queue"
	"github.com/wicketgate/cricket-ticketing/internal/repository"
	queuepub "github.com/wicketgate/cricket-ticketing/internal/service"
)

// ListAllBookings handles GET /v1/admin/bookings: the full ledger with
// venue details, newest first.
func (h *AdminHandler) ListAllBookings(c echo.Context) error {
	items, err := h.BookingRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CancelBooking handles DELETE /v1/admin/bookings/:id.  Unlike the fan
// endpoint there is no ownership check; the rest is identical, the
// booking row stays as cancelled history and the seat returns to sale
// in the same transaction.
func (h *AdminHandler) CancelBooking(c echo.Context) error {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx := c.Request().Context()

	tx, err := h.MatchSeatRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	booking, err := h.BookingRepo.GetTx(ctx, tx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	cancelled, err := h.BookingRepo.CancelTx(ctx, tx, bookingID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	if !cancelled {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking already cancelled"})
	}
	if err := h.MatchSeatRepo.ReleaseTx(ctx, tx, booking.MatchSeatID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	_ = queuepub.PublishTicketCancelled(ctx, queue.TicketCancelledEvent{
		BookingID:   booking.ID,
		TicketCode:  booking.TicketCode,
		UserID:      booking.UserID,
		MatchID:     booking.MatchID,
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.NoContent(http.StatusNoContent)
}
