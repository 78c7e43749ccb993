package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/handler"
)

// RegisterPublic registers the unauthenticated browsing endpoints:
// upcoming matches, fixture details and per-stand seat maps.  Guests
// see availability here; booking itself requires a session.
func RegisterPublic(e *echo.Echo, h *handler.PublicHandler) {
	g := e.Group("/v1")
	g.GET("/stadiums", h.ListStadiums)
	g.GET("/matches", h.ListMatches)
	g.GET("/matches/:id", h.GetMatch)
	g.GET("/matches/:id/stands/:standID/seats", h.GetSeatMap)
}
