package integration

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgnest/pg-listing-search/internal/adapter/catalog"
	"github.com/pgnest/pg-listing-search/internal/adapter/http/response"
	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/test/mock"
	"github.com/pgnest/pg-listing-search/test/testutil"
)

// newEmbeddedServer serves the bundled eight-PG catalog.
func newEmbeddedServer(t *testing.T) *TestServer {
	t.Helper()

	source, err := catalog.NewEmbedded()
	require.NoError(t, err)

	return NewTestServer(CreateUseCase(source))
}

// TestHandler_SearchListings_RecommendedOrder tests that an empty search returns the whole catalog in catalog order.
func TestHandler_SearchListings_RecommendedOrder(t *testing.T) {
	ts := newEmbeddedServer(t)

	resp := ts.SearchRequest(SearchRequestBody{})

	require.Equal(t, http.StatusOK, resp.Code)
	searchResp, err := resp.ParseSearchResponse()
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ListingIDs(searchResp))
	assert.Equal(t, 8, searchResp.Metadata.TotalResults)
	assert.Equal(t, 8, searchResp.Metadata.TotalListings)
	assert.Equal(t, 0, searchResp.Metadata.ActiveFilterCount)
	assert.Equal(t, "recommended", searchResp.Metadata.SortBy)
	assert.Equal(t, catalog.EmbeddedSourceName, searchResp.Metadata.Source)
}

// TestHandler_SearchListings_SortKeys tests every sort key end to end.
func TestHandler_SearchListings_SortKeys(t *testing.T) {
	ts := newEmbeddedServer(t)

	tests := []struct {
		sortBy   string
		wantIDs  []string
		wantSort string
	}{
		{sortBy: "price-low", wantIDs: []string{"2", "5", "1", "6", "7", "3", "8", "4"}, wantSort: "price-low"},
		{sortBy: "price-high", wantIDs: []string{"4", "8", "3", "7", "6", "1", "5", "2"}, wantSort: "price-high"},
		{sortBy: "rating", wantIDs: []string{"3", "7", "1", "5", "4", "2", "6", "8"}, wantSort: "rating"},
		{sortBy: "newest", wantIDs: []string{"8", "6", "3", "7", "5", "4", "1", "2"}, wantSort: "newest"},
		{sortBy: "popularity", wantIDs: []string{"1", "2", "3", "4", "5", "6", "7", "8"}, wantSort: "recommended"},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			resp := ts.SearchRequest(SearchRequestBody{SortBy: tt.sortBy})

			require.Equal(t, http.StatusOK, resp.Code)
			searchResp, err := resp.ParseSearchResponse()
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, ListingIDs(searchResp))
			assert.Equal(t, tt.wantSort, searchResp.Metadata.SortBy)
		})
	}
}

// TestHandler_SearchListings_Filters tests each filter category against the bundled catalog.
func TestHandler_SearchListings_Filters(t *testing.T) {
	ts := newEmbeddedServer(t)

	tests := []struct {
		name       string
		body       SearchRequestBody
		wantIDs    []string
		wantActive int
		wantQuery  string
	}{
		{
			name:    "text matches city case-insensitively",
			body:    SearchRequestBody{Search: "BANGALORE"},
			wantIDs: []string{"1", "5"},
		},
		{
			name:    "trailing space is part of the query",
			body:    SearchRequestBody{Search: "Nest PG "},
			wantIDs: []string{},
		},
		{
			name:    "text matches locality",
			body:    SearchRequestBody{Search: "powai"},
			wantIDs: []string{"8"},
		},
		{
			name:       "cities OR within category, AND across categories",
			body:       SearchRequestBody{Filters: map[string]interface{}{"cities": []string{"Delhi", "Mumbai"}, "genderPreference": []string{"Male"}}},
			wantIDs:    []string{"2", "8"},
			wantActive: 2,
		},
		{
			name:       "amenities require all tags",
			body:       SearchRequestBody{Filters: map[string]interface{}{"amenities": []string{"Gym", "Parking"}}},
			wantIDs:    []string{"3", "7"},
			wantActive: 1,
		},
		{
			name:       "room types count only available offerings",
			body:       SearchRequestBody{Filters: map[string]interface{}{"roomTypes": []string{"Single Sharing"}}},
			wantIDs:    []string{"1", "3", "5", "6", "7"},
			wantActive: 1,
		},
		{
			name:       "price range is inclusive",
			body:       SearchRequestBody{Filters: map[string]interface{}{"priceRange": []int{15000, 18000}}},
			wantIDs:    []string{"1", "3", "6", "7"},
			wantActive: 1,
		},
		{
			name:       "gender values are normalized",
			body:       SearchRequestBody{Filters: map[string]interface{}{"genderPreference": []string{"coed"}}},
			wantIDs:    []string{"1", "4", "7"},
			wantActive: 1,
		},
		{
			name:       "reversed price range matches nothing",
			body:       SearchRequestBody{Filters: map[string]interface{}{"priceRange": []int{20000, 10000}}},
			wantIDs:    []string{},
			wantActive: 1,
		},
		{
			name: "text, filters and sort combined",
			body: SearchRequestBody{
				Search:  "pune",
				Filters: map[string]interface{}{"amenities": []string{"Gym"}},
				SortBy:  "price-low",
			},
			wantIDs:    []string{"7", "3"},
			wantActive: 1,
			wantQuery:  "pune",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.SearchRequest(tt.body)

			require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
			searchResp, err := resp.ParseSearchResponse()
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, ListingIDs(searchResp))
			assert.Equal(t, len(tt.wantIDs), searchResp.Metadata.TotalResults)
			assert.Equal(t, tt.wantActive, searchResp.Metadata.ActiveFilterCount)
			if tt.wantQuery != "" {
				assert.Equal(t, tt.wantQuery, searchResp.Metadata.SearchQuery)
			}
		})
	}
}

// TestHandler_SearchListings_ValidationError tests that request validation failures return 400 with field details.
func TestHandler_SearchListings_ValidationError(t *testing.T) {
	ts := newEmbeddedServer(t)

	resp := ts.SearchRequest(SearchRequestBody{
		Filters: map[string]interface{}{"priceRange": []int{5000}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeValidationError, errResp.Code)
	assert.Contains(t, errResp.Details, "filters.priceRange")
}

// TestHandler_SearchListings_MalformedJSON tests that an undecodable body returns 400.
func TestHandler_SearchListings_MalformedJSON(t *testing.T) {
	ts := newEmbeddedServer(t)

	resp := ts.SearchRequest(`{"search": `)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeInvalidRequest, errResp.Code)
}

// TestHandler_SearchListings_SourceUnavailable tests that a failing catalog returns 503.
func TestHandler_SearchListings_SourceUnavailable(t *testing.T) {
	source := mock.NewSource("broken").WithError(errors.New("disk unplugged"))
	ts := NewTestServer(CreateUseCase(source))

	resp := ts.SearchRequest(SearchRequestBody{})

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeServiceUnavailable, errResp.Code)
	assert.NotContains(t, string(resp.Body), "disk unplugged", "source internals must not leak")
}

// TestHandler_QueryListings tests searching records supplied in the request.
func TestHandler_QueryListings(t *testing.T) {
	ts := NewTestServer(CreateUseCase(nil))

	records := []domain.Listing{
		testutil.NewListing("a", testutil.WithCity("Delhi"), testutil.WithPrice(9000), testutil.WithAvailableFrom("2024-03-01")),
		testutil.NewListing("b", testutil.WithCity("Delhi"), testutil.WithPrice(9000), testutil.WithAvailableFrom("2024-03-01")),
		testutil.NewListing("c", testutil.WithCity("Pune"), testutil.WithPrice(7000)),
	}

	resp := ts.QueryRequest(QueryRequestBody{
		Records:           records,
		SearchRequestBody: SearchRequestBody{Search: "delhi", SortBy: "newest"},
	})

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	searchResp, err := resp.ParseSearchResponse()
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, ListingIDs(searchResp), "ties keep input order")
	assert.Equal(t, 3, searchResp.Metadata.TotalListings)
	assert.Empty(t, searchResp.Metadata.Source)
}

// TestHandler_QueryListings_MinimalRecords tests that records carrying only the engine's fields are accepted.
func TestHandler_QueryListings_MinimalRecords(t *testing.T) {
	ts := NewTestServer(CreateUseCase(nil))

	body := `{"sortBy": "price-low", "records": [
		{"id": "1", "price": 15000, "city": "Bangalore", "rating": 4.5, "amenities": ["WiFi"],
		 "roomTypes": [{"type": "Single Sharing", "price": 18000, "available": true}],
		 "genderPreference": "Co-ed", "availableFrom": "2024-01-15"},
		{"id": "2", "price": 12000, "city": "Delhi", "rating": 4.2, "amenities": [], "roomTypes": [],
		 "genderPreference": "Male", "availableFrom": "2024-01-10"}
	]}`
	resp := ts.QueryRequest(body)

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	searchResp, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ListingIDs(searchResp))
}

// TestHandler_QueryListings_MalformedRecords tests that a malformed record rejects the whole request.
func TestHandler_QueryListings_MalformedRecords(t *testing.T) {
	ts := NewTestServer(CreateUseCase(nil))

	body := `{"records": ` + string(testutil.LoadTestJSON(t, "malformed_listings.json")) + `}`
	resp := ts.QueryRequest(body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, response.CodeInvalidInput, errResp.Code)
	assert.Contains(t, errResp.Message, "/0/price")
}

// TestHandler_QueryListings_SampleCatalog tests that the bundled catalog is accepted as request records.
func TestHandler_QueryListings_SampleCatalog(t *testing.T) {
	ts := NewTestServer(CreateUseCase(nil))

	body := `{"sortBy": "rating", "records": ` + string(testutil.LoadSampleCatalog(t)) + `}`
	resp := ts.QueryRequest(body)

	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	searchResp, err := resp.ParseSearchResponse()
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "7", "1", "5", "4", "2", "6", "8"}, ListingIDs(searchResp))
}

// TestHandler_GetListing tests fetching a single listing by id.
func TestHandler_GetListing(t *testing.T) {
	ts := newEmbeddedServer(t)

	t.Run("found", func(t *testing.T) {
		resp := ts.Get("/api/v1/listings/3")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, string(resp.Body), `"name":"Green Valley Residency"`)
		assert.Contains(t, string(resp.Body), `"price_display":"₹18,000/month"`)
	})

	t.Run("not found", func(t *testing.T) {
		resp := ts.Get("/api/v1/listings/99")

		assert.Equal(t, http.StatusNotFound, resp.Code)
		errResp, err := resp.ParseError()
		require.NoError(t, err)
		assert.Equal(t, response.CodeNotFound, errResp.Code)
	})
}

// TestHandler_GetFacets tests that facets merge the fixed options with the catalog.
func TestHandler_GetFacets(t *testing.T) {
	source := mock.NewSource("mock").WithListings([]domain.Listing{
		testutil.NewListing("x", testutil.WithCity("Chennai"), testutil.WithAmenities("Rooftop")),
	})
	ts := NewTestServer(CreateUseCase(source))

	resp := ts.Get("/api/v1/listings/facets")

	require.Equal(t, http.StatusOK, resp.Code)
	body := string(resp.Body)
	assert.Contains(t, body, `"Chennai"`)
	assert.Contains(t, body, `"Rooftop"`)
	assert.Contains(t, body, `"price-low"`)
	assert.Equal(t, 1, source.CallCount())
}

// TestHandler_ToggleFilter_RoundTrip tests that toggling the same value twice restores the original state.
func TestHandler_ToggleFilter_RoundTrip(t *testing.T) {
	ts := newEmbeddedServer(t)

	first := ts.ToggleRequest(map[string]interface{}{
		"filters":  map[string]interface{}{"amenities": []string{"WiFi"}},
		"category": "cities",
		"value":    "Pune",
	})
	require.Equal(t, http.StatusOK, first.Code, string(first.Body))
	state, err := first.ParseFilterState()
	require.NoError(t, err)
	assert.Equal(t, []string{"Pune"}, state.Filters.Cities)
	assert.Equal(t, 2, state.ActiveFilterCount)

	second := ts.ToggleRequest(map[string]interface{}{
		"filters":  state.Filters,
		"category": "cities",
		"value":    "Pune",
	})
	require.Equal(t, http.StatusOK, second.Code, string(second.Body))
	state, err = second.ParseFilterState()
	require.NoError(t, err)
	assert.Empty(t, state.Filters.Cities)
	assert.Equal(t, []string{"WiFi"}, state.Filters.Amenities)
	assert.Equal(t, 1, state.ActiveFilterCount)
}

// TestHandler_ToggleFilter_UnknownCategory tests that an unknown category is rejected.
func TestHandler_ToggleFilter_UnknownCategory(t *testing.T) {
	ts := newEmbeddedServer(t)

	resp := ts.ToggleRequest(map[string]interface{}{"category": "priceRange", "value": "5000"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Contains(t, errResp.Details, "category")
}

// TestHandler_DefaultFilters tests the cleared filter state.
func TestHandler_DefaultFilters(t *testing.T) {
	ts := newEmbeddedServer(t)

	resp := ts.Get("/api/v1/filters/default")

	require.Equal(t, http.StatusOK, resp.Code)
	state, err := resp.ParseFilterState()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPriceRange(), state.Filters.PriceRange)
	assert.Equal(t, 0, state.ActiveFilterCount)
}

// TestHandler_HealthCheck tests the health endpoint and that the middleware stack tags responses.
func TestHandler_HealthCheck(t *testing.T) {
	ts := newEmbeddedServer(t)

	resp := ts.HealthRequest()

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), `"status":"ok"`)
	assert.NotEmpty(t, resp.Headers.Get("X-Request-ID"))
}

// TestHandler_RequestIDPropagation tests that a caller-supplied request id is echoed back.
func TestHandler_RequestIDPropagation(t *testing.T) {
	ts := newEmbeddedServer(t)

	req := Request{Method: http.MethodGet, Path: "/api/v1/filters/default"}
	httpResp := ts.Do(req)
	generated := httpResp.Headers.Get("X-Request-ID")
	assert.NotEmpty(t, generated)

	second := ts.Do(req)
	assert.NotEqual(t, generated, second.Headers.Get("X-Request-ID"), "each request gets its own id")
}
