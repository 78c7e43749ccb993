package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/handler"
	"github.com/wicketgate/cricket-ticketing/internal/middleware"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin.
// All routes require a valid JWT and the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Stadiums ----
	g.POST("/stadiums", a.CreateStadium)
	g.GET("/stadiums", a.ListStadiums)
	g.GET("/stadiums/:id", a.GetStadium)
	g.PUT("/stadiums/:id", a.UpdateStadium)
	g.DELETE("/stadiums/:id", a.DeleteStadium)

	// ---- Stands ----
	g.POST("/stadiums/:id/stands", a.CreateStand)
	g.GET("/stadiums/:id/stands", a.ListStands)
	g.PUT("/stands/:id", a.UpdateStand)
	g.DELETE("/stands/:id", a.DeleteStand)

	// ---- Seats ----
	g.POST("/stands/:id/seats/generate", a.GenerateSeats)
	g.GET("/stands/:id/seats", a.ListSeats)
	g.PUT("/seats/:id", a.UpdateSeat)
	g.DELETE("/seats/:id", a.DeleteSeat)

	// ---- Matches ----
	g.POST("/matches", a.CreateMatch)
	g.GET("/matches", a.ListMatches)
	g.PUT("/matches/:id", a.UpdateMatch)
	g.DELETE("/matches/:id", a.DeleteMatch)

	// ---- Per-match pricing ----
	g.GET("/matches/:id/stands/:standID/pricing", a.GetMatchPricing)
	g.PATCH("/matches/:id/seats/:seatID", a.PatchMatchSeat)
	g.POST("/matches/:id/stands/:standID/pricing/multiplier", a.ApplyMultiplier)
	g.PUT("/matches/:id/pricing", a.SavePricing)

	// ---- Bookings ----
	g.GET("/bookings", a.ListAllBookings)
	g.DELETE("/bookings/:id", a.CancelBooking)
}
