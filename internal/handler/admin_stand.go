package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/model"
	"github.com/wicketgate/cricket-ticketing/internal/repository"
)

type standReq struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Capacity       uint32  `json:"capacity"`
	BasePriceCents uint32  `json:"base_price_cents"`
	Description    *string `json:"description"`
}

// CreateStand handles POST /v1/admin/stadiums/:id/stands.
func (h *AdminHandler) CreateStand(c echo.Context) error {
	stadiumID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.StadiumRepo.GetByID(c.Request().Context(), stadiumID); err != nil {
		if errors.Is(err, repository.ErrStadiumNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stadium not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	var body standReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	st := &model.Stand{
		StadiumID:      stadiumID,
		Name:           name,
		Category:       strings.TrimSpace(body.Category),
		Capacity:       body.Capacity,
		BasePriceCents: body.BasePriceCents,
		Description:    body.Description,
	}
	if err := h.StandRepo.Create(c.Request().Context(), st); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create stand"})
	}
	return c.JSON(http.StatusCreated, st)
}

// ListStands handles GET /v1/admin/stadiums/:id/stands.
func (h *AdminHandler) ListStands(c echo.Context) error {
	stadiumID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.StadiumRepo.GetByID(c.Request().Context(), stadiumID); err != nil {
		if errors.Is(err, repository.ErrStadiumNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stadium not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	items, err := h.StandRepo.ListByStadium(c.Request().Context(), stadiumID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateStand handles PUT /v1/admin/stands/:id.  The base price here
// only moves the default for future pricing; already materialized
// match seats keep the price they were saved with.
func (h *AdminHandler) UpdateStand(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body standReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	existing, err := h.StandRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStandNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stand not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	st := &model.Stand{
		ID:             id,
		StadiumID:      existing.StadiumID,
		Name:           name,
		Category:       strings.TrimSpace(body.Category),
		Capacity:       body.Capacity,
		BasePriceCents: body.BasePriceCents,
		Description:    body.Description,
	}
	if err := h.StandRepo.Update(c.Request().Context(), st); err != nil {
		if errors.Is(err, repository.ErrStandNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stand not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, st)
}

// DeleteStand handles DELETE /v1/admin/stands/:id.  Seats and match
// seats under the stand go with it; a stand referenced by any booking
// is refused with 409.
func (h *AdminHandler) DeleteStand(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.StandRepo.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrStandNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stand not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "stand has bookings"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
