package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all listing search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ListingHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the versioned API only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ListingHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	listings := api.Group("/listings")
	listings.POST("/search", h.SearchListings)
	listings.POST("/query", h.QueryListings)
	listings.GET("/facets", h.GetFacets)
	listings.GET("/:id", h.GetListing)

	filters := api.Group("/filters")
	filters.POST("/toggle", h.ToggleFilter)
	filters.GET("/default", h.DefaultFilters)
}
