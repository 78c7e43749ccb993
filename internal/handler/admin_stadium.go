package handler // handler package contains admin venue management endpoints

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/model"
	"github.com/wicketgate/cricket-ticketing/internal/repository"
)

type stadiumReq struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Capacity    uint32  `json:"capacity"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// CreateStadium handles POST /v1/admin/stadiums.
func (h *AdminHandler) CreateStadium(c echo.Context) error {
	var body stadiumReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	location := strings.TrimSpace(body.Location)
	if name == "" || location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and location are required"})
	}
	st := &model.Stadium{
		Name:        name,
		Location:    location,
		Capacity:    body.Capacity,
		Description: body.Description,
		ImageURL:    body.ImageURL,
	}
	if err := h.StadiumRepo.Create(c.Request().Context(), st); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create stadium"})
	}
	return c.JSON(http.StatusCreated, st)
}

// ListStadiums handles GET /v1/admin/stadiums.
func (h *AdminHandler) ListStadiums(c echo.Context) error {
	items, err := h.StadiumRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetStadium handles GET /v1/admin/stadiums/:id.
func (h *AdminHandler) GetStadium(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	st, err := h.StadiumRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStadiumNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stadium not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, st)
}

// UpdateStadium handles PUT /v1/admin/stadiums/:id.
func (h *AdminHandler) UpdateStadium(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body stadiumReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	location := strings.TrimSpace(body.Location)
	if name == "" || location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and location are required"})
	}
	st := &model.Stadium{
		ID:          id,
		Name:        name,
		Location:    location,
		Capacity:    body.Capacity,
		Description: body.Description,
		ImageURL:    body.ImageURL,
	}
	if err := h.StadiumRepo.Update(c.Request().Context(), st); err != nil {
		if errors.Is(err, repository.ErrStadiumNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stadium not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, st)
}

// DeleteStadium handles DELETE /v1/admin/stadiums/:id.  Stands, seats,
// matches and match seats under the stadium go with it; a stadium with
// any booking in its subtree is refused with 409.
func (h *AdminHandler) DeleteStadium(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.StadiumRepo.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrStadiumNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "stadium not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "stadium has bookings"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
