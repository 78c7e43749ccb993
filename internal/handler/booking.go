package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/model"
	"github.com/wicketgate/cricket-ticketing/internal/queue"
	"github.com/wicketgate/cricket-ticketing/internal/repository"
	queuepub "github.com/wicketgate/cricket-ticketing/internal/service"
	"github.com/wicketgate/cricket-ticketing/internal/utils"
)

// FanHandler groups the repositories the fan-facing booking endpoints
// need.  JWT authentication and role checks run in middleware; the
// critical reserve-then-insert sequence runs in one transaction so a
// seat can never end up with two bookings.
type FanHandler struct {
	MatchRepo     *repository.MatchRepo
	StandRepo     *repository.StandRepo
	SeatRepo      *repository.SeatRepo
	MatchSeatRepo *repository.MatchSeatRepo
	BookingRepo   *repository.BookingRepo
}

// NewFanHandler constructs a FanHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewFanHandler(matchRepo *repository.MatchRepo, standRepo *repository.StandRepo, seatRepo *repository.SeatRepo, matchSeatRepo *repository.MatchSeatRepo, bookingRepo *repository.BookingRepo) *FanHandler {
	if matchRepo == nil || standRepo == nil || seatRepo == nil || matchSeatRepo == nil || bookingRepo == nil {
		panic("nil repository passed to NewFanHandler")
	}
	return &FanHandler{
		MatchRepo:     matchRepo,
		StandRepo:     standRepo,
		SeatRepo:      seatRepo,
		MatchSeatRepo: matchSeatRepo,
		BookingRepo:   bookingRepo,
	}
}

// attemptOutcome writes a booking-attempt response with the stand's
// refreshed seat map attached best-effort.  Every attempt, won or
// lost, hands the caller a fresh view so stale "available" buttons
// correct themselves in one round trip.
func (h *FanHandler) attemptOutcome(c echo.Context, status int, body echo.Map, matchID, standID uint64) error {
	if seats, err := h.MatchSeatRepo.ListEffectiveByStand(c.Request().Context(), matchID, standID); err == nil {
		body["seat_map"] = buildSeatMap(seats)
	}
	return c.JSON(status, body)
}

// BookSeat handles POST /v1/bookings.  The body names one match seat;
// the handler flips it available -> booked and inserts the booking in
// a single transaction.  Win or lose, the response carries the stand's
// refreshed seat map via attemptOutcome.
func (h *FanHandler) BookSeat(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		MatchSeatID uint64 `json:"match_seat_id"`
	}
	if err := c.Bind(&body); err != nil || body.MatchSeatID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "match_seat_id is required"})
	}
	ctx := c.Request().Context()

	ms, err := h.MatchSeatRepo.GetByID(ctx, body.MatchSeatID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchSeatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found for this match"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	seat, err := h.SeatRepo.GetByID(ctx, ms.SeatID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	m, err := h.MatchRepo.GetByIDWithStadium(ctx, ms.MatchID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	// Tickets are only sold for fixtures that have not started.
	if m.Status != model.MatchUpcoming {
		return c.JSON(http.StatusConflict, echo.Map{"error": "match is not open for booking"})
	}

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

	reserved, err := h.MatchSeatRepo.ReserveTx(ctx, tx, ms.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSeatUnavailable):
			// Lost the race or the seat is blocked.  The deferred
			// rollback undoes nothing; the pool read in attemptOutcome
			// sees committed state only.
			return h.attemptOutcome(c, http.StatusConflict,
				echo.Map{"error": "seat unavailable"}, ms.MatchID, seat.StandID)
		case errors.Is(err, repository.ErrMatchSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found for this match"})
		default:
			return h.attemptOutcome(c, http.StatusInternalServerError,
				echo.Map{"error": "booking failed"}, ms.MatchID, seat.StandID)
		}
	}

	code, err := utils.NewTicketCode()
	if err != nil {
		return h.attemptOutcome(c, http.StatusInternalServerError,
			echo.Map{"error": "booking failed"}, ms.MatchID, seat.StandID)
	}
	booking := &model.Booking{
		UserID:        userID,
		MatchID:       reserved.MatchID,
		MatchSeatID:   reserved.ID,
		AmountCents:   reserved.PriceCents,
		PaymentStatus: model.PaymentCompleted,
		BookingStatus: model.BookingConfirmed,
		TicketCode:    code,
		BookingDate:   time.Now().UTC(),
	}
	if err := h.BookingRepo.CreateTx(ctx, tx, booking); err != nil {
		return h.attemptOutcome(c, http.StatusInternalServerError,
			echo.Map{"error": "booking failed"}, ms.MatchID, seat.StandID)
	}
	if err := tx.Commit(); err != nil {
		return h.attemptOutcome(c, http.StatusInternalServerError,
			echo.Map{"error": "failed to commit transaction"}, ms.MatchID, seat.StandID)
	}
	committed = true

	standName := ""
	if stand, standErr := h.StandRepo.GetByID(ctx, seat.StandID); standErr == nil {
		standName = stand.Name
	}

	// Best effort: the ticket is sold once the commit lands, the event
	// stream must not undo that.
	_ = queuepub.PublishTicketBooked(ctx, queue.TicketBookedEvent{
		BookingID:   booking.ID,
		TicketCode:  booking.TicketCode,
		UserID:      booking.UserID,
		MatchID:     booking.MatchID,
		TeamA:       m.TeamA,
		TeamB:       m.TeamB,
		MatchDate:   m.MatchDate.Format(time.RFC3339),
		StadiumName: m.StadiumName,
		StandName:   standName,
		SeatLabel:   seat.RowLabel + "-" + seat.SeatNumber,
		AmountCents: booking.AmountCents,
		BookedAt:    booking.BookingDate.Format(time.RFC3339),
	})

	return h.attemptOutcome(c, http.StatusCreated, echo.Map{"booking": booking}, ms.MatchID, seat.StandID)
}

// ListMyBookings handles GET /v1/my-bookings and returns the fan's
// bookings with venue details, newest first.
func (h *FanHandler) ListMyBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.BookingRepo.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CancelBooking handles DELETE /v1/bookings/:id.  Only the owning fan
// may cancel, the booking row is kept as history with its status
// flipped, and the seat goes straight back on sale in the same
// transaction.
func (h *FanHandler) CancelBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
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

	booking, err := h.BookingRepo.GetOwnedTx(ctx, tx, bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
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
