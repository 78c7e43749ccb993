// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wicketgate/cricket-ticketing/internal/handler"
	"github.com/wicketgate/cricket-ticketing/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently that is the health check only; public browsing lives in
// RegisterPublic.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the auth endpoints.  Register, login, refresh
// and logout live under /v1/auth without a session; /v1/me is
// protected and returns the caller's claims.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	p := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	p.GET("/me", a.Me)
}
