package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/platefront/restaurant-api/internal/handler"    // import the handlers that implement business logic
	"github.com/platefront/restaurant-api/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/platefront/restaurant-api/internal/model"      // import role constants for route policies
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/api/health" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/api/health", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /api/auth,
// while protected endpoints take the JWT middleware directly.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Create a route group under the /api/auth prefix for operations that do
	// not require an existing session (login, refresh, logout).  Each of
	// these handlers is responsible for issuing or exchanging tokens.
	g := e.Group("/api/auth")
	// Register a POST endpoint to handle user login at /api/auth/login.
	g.POST("/login", a.Login)
	// Register a POST endpoint to refresh access tokens at /api/auth/refresh.
	// This rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Logout does not require JWT authentication: the handler accepts a JSON
	// body containing a `refresh_token` and invalidates that token.
	g.POST("/logout", a.Logout)

	// Account creation is provisioning, not self-service: there is no
	// public sign-up, so only an authenticated administrator can add
	// staff (or further administrators).  The first admin comes from the
	// seeder.
	e.POST("/api/auth/register", a.Register,
		middleware.JWTAuth(jwtSecret), middleware.RequireRole(model.RoleAdmin))

	// /api/me returns the authenticated identity and therefore takes the
	// JWT middleware directly instead of joining the public group.
	e.GET("/api/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterMenu registers the catalog routes.  Browsing the menu is open to
// guests; cacheMW, when non-nil, wraps the public listing so repeated reads
// are served from Redis.  The catalog itself is administrator territory.
func RegisterMenu(e *echo.Echo, h *handler.MenuHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	if cacheMW != nil {
		e.GET("/api/menu", h.List, cacheMW)
	} else {
		e.GET("/api/menu", h.List)
	}

	admin := e.Group("/api/menu")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)
}

// RegisterTables registers the floor plan routes.  Guests may view the
// floor plan (with the same optional cache as the menu); changing it,
// including the occupied flag, is administrator territory.
func RegisterTables(e *echo.Echo, h *handler.TableHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	if cacheMW != nil {
		e.GET("/api/tables", h.List, cacheMW)
	} else {
		e.GET("/api/tables", h.List)
	}

	admin := e.Group("/api/tables")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)
}

// RegisterReservations registers the booking routes.  Staff manage the
// book day to day; cancelling a booking erases it, so that is reserved
// for administrators.
func RegisterReservations(e *echo.Echo, h *handler.ReservationHandler, jwtSecret string) {
	g := e.Group("/api/reservations")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete, middleware.RequireRole(model.RoleAdmin))
}

// RegisterOrders registers order, line item and payment-taking routes.
// Everything requires a logged-in identity; deleting a whole order is
// reserved for administrators because it erases its payment history.
func RegisterOrders(e *echo.Echo, h *handler.OrderHandler, jwtSecret string) {
	g := e.Group("/api/orders")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.DELETE("/:id", h.Delete, middleware.RequireRole(model.RoleAdmin))
	g.POST("/:id/items", h.AddItem)
	g.PUT("/:id/items/:item_id", h.UpdateItem)
	g.DELETE("/:id/items/:item_id", h.DeleteItem)
	g.POST("/:id/pay", h.Pay)
}

// RegisterPayments registers the read-only money views: the payment
// ledger and the daily sales report.  Both require a logged-in identity.
func RegisterPayments(e *echo.Echo, h *handler.PaymentHandler, jwtSecret string) {
	g := e.Group("/api")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
	g.GET("/payments", h.List)
	g.GET("/reports/sales", h.SalesReport)
}
