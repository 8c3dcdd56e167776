// Package integration provides helpers and integration tests for the listing search system.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, use cases, catalogs and mock sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/pgnest/pg-listing-search/internal/adapter/http"
	httpmw "github.com/pgnest/pg-listing-search/internal/adapter/http/middleware"
	"github.com/pgnest/pg-listing-search/internal/adapter/http/response"
	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/logger"
	"github.com/pgnest/pg-listing-search/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ListingHandler
}

// NewTestServer creates a new test server with the given use case.
// Route middleware, such as a request timeout, is applied to the /api/v1 routes.
func NewTestServer(uc usecase.ListingSearchUseCase, routeMiddleware ...echo.MiddlewareFunc) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpmw.Setup(e, logger.Nop())

	handler := httpAdapter.NewListingHandler(uc)
	httpAdapter.RegisterRoutesWithMiddleware(e, handler, routeMiddleware...)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
// A string Body is sent verbatim; anything else is JSON-encoded.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch b := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search over the configured catalog.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/listings/search",
		Body:   body,
	})
}

// QueryRequest posts a search over caller-supplied records.
func (ts *TestServer) QueryRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/listings/query",
		Body:   body,
	})
}

// ToggleRequest posts a filter toggle.
func (ts *TestServer) ToggleRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/filters/toggle",
		Body:   body,
	})
}

// Get makes a GET request to path.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// ParseSearchResponse parses the response body as a search response.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseFilterState parses the response body as a filter state.
func (r *Response) ParseFilterState() (*httpAdapter.FilterStateResponse, error) {
	var resp httpAdapter.FilterStateResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var errResp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return &errResp, nil
}

// ListingIDs returns the listing ids of a search response in order.
func ListingIDs(resp *httpAdapter.SearchResponseDTO) []string {
	ids := make([]string, len(resp.Listings))
	for i := range resp.Listings {
		ids[i] = resp.Listings[i].ID
	}
	return ids
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Search  string                 `json:"search,omitempty"`
	Filters map[string]interface{} `json:"filters,omitempty"`
	SortBy  string                 `json:"sortBy,omitempty"`
}

// QueryRequestBody is a search request carrying its own records.
type QueryRequestBody struct {
	Records interface{} `json:"records"`
	SearchRequestBody
}

// CreateUseCase creates a use case over the given source with default configuration.
func CreateUseCase(source domain.ListingSource) usecase.ListingSearchUseCase {
	return usecase.NewListingSearchUseCase(source, nil)
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(source domain.ListingSource, config *usecase.Config) usecase.ListingSearchUseCase {
	return usecase.NewListingSearchUseCase(source, config)
}
