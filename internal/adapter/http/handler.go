package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/pgnest/pg-listing-search/internal/adapter/catalog"
	"github.com/pgnest/pg-listing-search/internal/adapter/http/response"
	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/usecase"
)

// ListingHandler handles HTTP requests for listing and filter endpoints.
type ListingHandler struct {
	useCase usecase.ListingSearchUseCase
}

// NewListingHandler creates a new ListingHandler with the given use case.
func NewListingHandler(uc usecase.ListingSearchUseCase) *ListingHandler {
	return &ListingHandler{
		useCase: uc,
	}
}

// SearchListings handles POST /api/v1/listings/search
//
// @Summary Search the listing catalog
// @Description Filter the catalog by text, price, city, gender, amenities and room types, then sort it
// @Tags listings
// @Accept json
// @Produce json
// @Param request body SearchListingsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Catalog unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /listings/search [post]
func (h *ListingHandler) SearchListings(c echo.Context) error {
	var req SearchListingsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToSearchRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// QueryListings handles POST /api/v1/listings/query
//
// @Summary Query caller-supplied listings
// @Description Run the same filter and sort pipeline over the records sent in the request body
// @Tags listings
// @Accept json
// @Produce json
// @Param request body QueryListingsRequest true "Records and search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error or malformed records"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /listings/query [post]
func (h *ListingHandler) QueryListings(c echo.Context) error {
	var req QueryListingsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	records, err := catalog.Decode(req.Records)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := h.useCase.Query(c.Request().Context(), records, ToSearchRequest(&req.SearchListingsRequest))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// GetListing handles GET /api/v1/listings/:id
//
// @Summary Get a listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} ListingDTO
// @Failure 404 {object} response.ErrorDetail "Listing not found"
// @Failure 503 {object} response.ErrorDetail "Catalog unavailable"
// @Router /listings/{id} [get]
func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.useCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToListingDTO(listing))
}

// GetFacets handles GET /api/v1/listings/facets
//
// @Summary Get filter options
// @Description Cities, gender options, room types, amenities, price slider bounds and sort options
// @Tags listings
// @Produce json
// @Success 200 {object} domain.Facets
// @Failure 503 {object} response.ErrorDetail "Catalog unavailable"
// @Router /listings/facets [get]
func (h *ListingHandler) GetFacets(c echo.Context) error {
	facets, err := h.useCase.Facets(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, facets)
}

// ToggleFilter handles POST /api/v1/filters/toggle
//
// @Summary Toggle a filter option
// @Description Adds the value to the category if absent, removes it if present, and returns the new configuration
// @Tags filters
// @Accept json
// @Produce json
// @Param request body ToggleFilterRequest true "Current filters, category and value"
// @Success 200 {object} FilterStateResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /filters/toggle [post]
func (h *ListingHandler) ToggleFilter(c echo.Context) error {
	var req ToggleFilterRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	next, err := ToDomainFilters(req.Filters).Toggle(domain.FilterCategory(req.Category), req.Value)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToFilterStateResponse(next))
}

// DefaultFilters handles GET /api/v1/filters/default
//
// @Summary Get the cleared filter configuration
// @Tags filters
// @Produce json
// @Success 200 {object} FilterStateResponse
// @Router /filters/default [get]
func (h *ListingHandler) DefaultFilters(c echo.Context) error {
	return response.OK(c, ToFilterStateResponse(domain.DefaultFilterConfiguration()))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ListingHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ListingHandler) handleError(c echo.Context, err error) error {
	// Field-level problems found by the use case
	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	if errors.Is(err, domain.ErrInvalidInput) {
		return response.InvalidInput(c, err.Error())
	}

	if errors.Is(err, domain.ErrListingNotFound) {
		return response.NotFound(c, err.Error())
	}

	if errors.Is(err, domain.ErrSourceUnavailable) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *ListingHandler) Health(c echo.Context) error {
	return response.Health(c)
}
