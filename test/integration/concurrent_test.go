package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgnest/pg-listing-search/internal/adapter/http/response"
	"github.com/pgnest/pg-listing-search/test/mock"
)

// TestConcurrent_MultipleSearchRequests tests that multiple concurrent
// search requests are handled correctly without interference.
func TestConcurrent_MultipleSearchRequests(t *testing.T) {
	// Arrange
	source := mock.NewSource("mock").
		WithDelay(10 * time.Millisecond). // Small delay to increase overlap
		WithListings(mock.SampleListings(6))

	ts := NewTestServer(CreateUseCase(source))

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act - Fire concurrent requests
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.SearchRequest(SearchRequestBody{SortBy: "price-high"})
		}(i)
	}

	wg.Wait()

	// Assert - All requests should succeed with the same ordering
	for i := 0; i < numRequests; i++ {
		require.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		resp, err := results[i].ParseSearchResponse()
		require.NoError(t, err)
		assert.Equal(t, []string{"pg-6", "pg-5", "pg-4", "pg-3", "pg-2", "pg-1"}, ListingIDs(resp), "request %d", i)
	}

	assert.Equal(t, numRequests, source.CallCount())
}

// TestConcurrent_IndependentResults tests that concurrent requests with
// different criteria each receive their own results.
func TestConcurrent_IndependentResults(t *testing.T) {
	// Arrange
	source := mock.NewSource("mock").WithListings(mock.SampleListings(8))
	ts := NewTestServer(CreateUseCase(source))

	cities := []string{"Bangalore", "Delhi", "Mumbai", "Pune"}
	numRequests := 20
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.SearchRequest(SearchRequestBody{
				Filters: map[string]interface{}{"cities": []string{cities[idx%len(cities)]}},
			})
		}(i)
	}

	wg.Wait()

	// Assert - SampleListings rotates cities, so each city has exactly two listings
	for i := 0; i < numRequests; i++ {
		require.Equal(t, http.StatusOK, results[i].Code)
		resp, err := results[i].ParseSearchResponse()
		require.NoError(t, err)

		require.Len(t, resp.Listings, 2, "request %d", i)
		for _, l := range resp.Listings {
			assert.Equal(t, cities[i%len(cities)], l.City, "request %d got another request's results", i)
		}
		assert.Equal(t, 1, resp.Metadata.ActiveFilterCount)
	}
}

// TestConcurrent_NoRaceCondition is designed to be run with -race flag.
// It exercises search, query, toggle and facets concurrently.
func TestConcurrent_NoRaceCondition(t *testing.T) {
	// Arrange
	source := mock.NewSource("mock").WithListings(mock.SampleListings(5))
	ts := NewTestServer(CreateUseCase(source))

	numGoroutines := 50
	var wg sync.WaitGroup

	// Act
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			switch idx % 4 {
			case 0:
				_ = ts.SearchRequest(SearchRequestBody{Search: "sample", SortBy: "rating"})
			case 1:
				_ = ts.QueryRequest(QueryRequestBody{Records: mock.SampleListings(3)})
			case 2:
				_ = ts.ToggleRequest(map[string]interface{}{"category": "amenities", "value": "AC"})
			default:
				_ = ts.Get("/api/v1/listings/facets")
			}
		}(i)
	}

	wg.Wait()

	// Assert - The race detector fails the test if races are found
	assert.Positive(t, source.CallCount())
}

// TestConcurrent_SourceCallCountAccuracy tests that the mock source's
// call count is accurate under concurrent access.
func TestConcurrent_SourceCallCountAccuracy(t *testing.T) {
	// Arrange
	source := mock.NewSource("mock").WithListings(mock.SampleListings(1))
	ts := NewTestServer(CreateUseCase(source))

	numRequests := 100
	var wg sync.WaitGroup

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ts.SearchRequest(SearchRequestBody{})
		}()
	}

	wg.Wait()

	// Assert - Source should be called exactly numRequests times
	assert.Equal(t, numRequests, source.CallCount())

	source.Reset()
	assert.Zero(t, source.CallCount())
}

// TestConcurrent_SlowSourceTimesOut tests that a request timeout on the API
// routes turns a slow catalog into 504 responses without blocking other requests.
func TestConcurrent_SlowSourceTimesOut(t *testing.T) {
	// Arrange
	source := mock.NewSource("slow").
		WithDelay(500 * time.Millisecond).
		WithListings(mock.SampleListings(2))

	ts := NewTestServer(CreateUseCase(source), middleware.ContextTimeout(30*time.Millisecond))

	numRequests := 5
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act
	start := time.Now()
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.SearchRequest(SearchRequestBody{})
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// Assert
	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusGatewayTimeout, results[i].Code, "request %d", i)
		errResp, err := results[i].ParseError()
		require.NoError(t, err)
		assert.Equal(t, response.CodeTimeout, errResp.Code)
	}
	assert.Less(t, elapsed, 400*time.Millisecond, "requests should not wait for the slow source")

	// Health is outside the API group and unaffected by the timeout
	assert.Equal(t, http.StatusOK, ts.HealthRequest().Code)
}
