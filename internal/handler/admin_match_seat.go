package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/model"
	"github.com/wicketgate/cricket-ticketing/internal/repository"
)

// maxPriceCents rejects obviously broken prices before they reach the
// store.  One million units is far above any real ticket.
const maxPriceCents = 100_000_000

// matchAndStand loads the match and stand from path parameters and
// verifies the stand belongs to the match's stadium.  Pricing a stand
// from a different venue is always a caller bug.  On failure the
// response has already been written and ok is false.
func (h *AdminHandler) matchAndStand(c echo.Context) (m *model.Match, st *model.Stand, ok bool) {
	matchID, idOK := pathID(c, "id")
	if !idOK {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid match id"})
		return nil, nil, false
	}
	standID, idOK := pathID(c, "standID")
	if !idOK {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid stand id"})
		return nil, nil, false
	}
	ctx := c.Request().Context()
	m, err := h.MatchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		return nil, nil, false
	}
	st, err = h.StandRepo.GetByID(ctx, standID)
	if err != nil {
		if errors.Is(err, repository.ErrStandNotFound) {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "stand not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		return nil, nil, false
	}
	if st.StadiumID != m.StadiumID {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "stand does not belong to the match's stadium"})
		return nil, nil, false
	}
	return m, st, true
}

// GetMatchPricing handles GET /v1/admin/matches/:id/stands/:standID/pricing.
// Every seat of the stand comes back with its effective price and
// status for this match: the persisted match seat when one exists, the
// stand's base price otherwise.
func (h *AdminHandler) GetMatchPricing(c echo.Context) error {
	m, st, ok := h.matchAndStand(c)
	if !ok {
		return nil
	}
	seats, qerr := h.MatchSeatRepo.ListEffectiveByStand(c.Request().Context(), m.ID, st.ID)
	if qerr != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"match_id":         m.ID,
		"stand_id":         st.ID,
		"base_price_cents": st.BasePriceCents,
		"seats":            seats,
	})
}

// PatchMatchSeat handles PATCH /v1/admin/matches/:id/seats/:seatID and
// sets one seat's price or status for this match, materializing the
// match seat row if the pricer had not touched it yet.
func (h *AdminHandler) PatchMatchSeat(c echo.Context) error {
	matchID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid match id"})
	}
	seatID, ok := pathID(c, "seatID")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id"})
	}
	var body struct {
		PriceCents uint32 `json:"price_cents"`
		Status     string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.PriceCents > maxPriceCents {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price out of range"})
	}
	if !model.ValidMatchSeatStatus(body.Status) || body.Status == model.MatchSeatBooked {
		// "booked" belongs to the booking engine, not the pricer.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	ctx := c.Request().Context()
	if _, err := h.MatchRepo.GetByID(ctx, matchID); err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if _, err := h.SeatRepo.GetByID(ctx, seatID); err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
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

	// A booked row belongs to the booking engine, refuse up front.  The
	// upsert itself also refuses to flip a booked status, so a booking
	// that lands between this read and the write stays booked.
	if existing, err := h.MatchSeatRepo.GetByMatchAndSeat(ctx, matchID, seatID); err == nil && existing.Status == model.MatchSeatBooked {
		return c.JSON(http.StatusConflict, echo.Map{"error": "seat is booked"})
	}

	ms := &model.MatchSeat{MatchID: matchID, SeatID: seatID, PriceCents: body.PriceCents, Status: body.Status}
	created, err := h.MatchSeatRepo.UpsertTx(ctx, tx, ms)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, echo.Map{
		"match_id":    matchID,
		"seat_id":     seatID,
		"price_cents": body.PriceCents,
		"status":      body.Status,
		"created":     created,
	})
}

// ApplyMultiplier handles POST /v1/admin/matches/:id/stands/:standID/pricing/multiplier.
// Every seat of the stand is priced at multiplier times the stand's
// base price, materializing rows for seats the pricer had not touched.
// Booked seats keep their booked status but do get the new price.
func (h *AdminHandler) ApplyMultiplier(c echo.Context) error {
	m, st, ok := h.matchAndStand(c)
	if !ok {
		return nil
	}
	var body struct {
		Multiplier float64 `json:"multiplier"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Multiplier <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "multiplier must be positive"})
	}
	if float64(st.BasePriceCents)*body.Multiplier > maxPriceCents {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price out of range"})
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

	touched, err := h.MatchSeatRepo.ApplyMultiplierTx(ctx, tx, m.ID, st.ID, body.Multiplier)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "apply multiplier failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.JSON(http.StatusOK, echo.Map{"seats": touched})
}

// SavePricing handles PUT /v1/admin/matches/:id/pricing: a batch of
// per-seat rows saved in one transaction.  The response reports how
// many rows were created versus updated.
func (h *AdminHandler) SavePricing(c echo.Context) error {
	matchID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid match id"})
	}
	var body struct {
		Seats []struct {
			SeatID     uint64 `json:"seat_id"`
			PriceCents uint32 `json:"price_cents"`
			Status     string `json:"status"`
		} `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats is required"})
	}
	for _, s := range body.Seats {
		if s.SeatID == 0 || s.PriceCents > maxPriceCents {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat entry"})
		}
		if !model.ValidMatchSeatStatus(s.Status) || s.Status == model.MatchSeatBooked {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
		}
	}
	ctx := c.Request().Context()
	if _, err := h.MatchRepo.GetByID(ctx, matchID); err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
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

	created, updated := 0, 0
	for _, s := range body.Seats {
		// Same rule as the single-seat patch: a booked row is the
		// booking engine's and the pricer must not release it.  The
		// upsert's status clause backstops this check atomically.
		if existing, err := h.MatchSeatRepo.GetByMatchAndSeat(ctx, matchID, s.SeatID); err == nil && existing.Status == model.MatchSeatBooked {
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat is booked", "seat_id": s.SeatID})
		}
		ms := &model.MatchSeat{MatchID: matchID, SeatID: s.SeatID, PriceCents: s.PriceCents, Status: s.Status}
		wasCreated, err := h.MatchSeatRepo.UpsertTx(ctx, tx, ms)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
		}
		if wasCreated {
			created++
		} else {
			updated++
		}
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	return c.JSON(http.StatusOK, echo.Map{"created": created, "updated": updated})
}
