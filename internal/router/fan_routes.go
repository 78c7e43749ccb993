package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/handler"
	"github.com/wicketgate/cricket-ticketing/internal/middleware"
)

// RegisterFan registers fan-scoped endpoints under /v1.  All routes
// require a valid JWT; admins are allowed through as well so an
// operator account can exercise the booking flow.
func RegisterFan(e *echo.Echo, h *handler.FanHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("FAN", "ADMIN"),
	)
	g.POST("/bookings", h.BookSeat)
	g.GET("/my-bookings", h.ListMyBookings)
	g.DELETE("/bookings/:id", h.CancelBooking)
}
