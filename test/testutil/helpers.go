// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/timeutil"
)

// projectRoot returns the repository root, found relative to this file.
func projectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// TestDataPath returns the absolute path of a file in test/testdata.
func TestDataPath(t *testing.T, filename string) string {
	t.Helper()
	return filepath.Join(projectRoot(t), "test", "testdata", filename)
}

// LoadTestJSON loads a file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(TestDataPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadSampleCatalog loads the bundled sample catalog as raw JSON.
func LoadSampleCatalog(t *testing.T) []byte {
	t.Helper()

	path := filepath.Join(projectRoot(t), "internal", "adapter", "catalog", "data", "sample_pgs.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load sample catalog: %v", err)
	}
	return data
}

// MustParseDate parses a date string in YYYY-MM-DD (or YYYY-M-D) format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) timeutil.Date {
	t.Helper()
	parsed, err := timeutil.ParseDate(dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// ListingOption customizes a listing built by NewListing.
type ListingOption func(*domain.Listing)

// NewListing builds a valid listing in Bangalore at 10000 with no amenities or rooms.
func NewListing(id string, opts ...ListingOption) domain.Listing {
	l := domain.Listing{
		ID:               id,
		Name:             "PG " + id,
		Location:         "Indiranagar, Bangalore",
		City:             "Bangalore",
		Price:            10000,
		Rating:           4.0,
		Amenities:        []string{},
		RoomTypes:        []domain.RoomOffering{},
		GenderPreference: domain.GenderCoed,
		AvailableFrom:    timeutil.MustParseDate("2024-01-01"),
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// WithName sets the listing name.
func WithName(name string) ListingOption {
	return func(l *domain.Listing) { l.Name = name }
}

// WithCity sets the city and a matching location.
func WithCity(city string) ListingOption {
	return func(l *domain.Listing) {
		l.City = city
		l.Location = "Central, " + city
	}
}

// WithPrice sets the starting price.
func WithPrice(price int) ListingOption {
	return func(l *domain.Listing) { l.Price = price }
}

// WithRating sets the rating.
func WithRating(rating float64) ListingOption {
	return func(l *domain.Listing) { l.Rating = rating }
}

// WithGender sets the gender preference.
func WithGender(g domain.GenderPreference) ListingOption {
	return func(l *domain.Listing) { l.GenderPreference = g }
}

// WithAvailableFrom sets the availability date. It panics on a malformed date.
func WithAvailableFrom(date string) ListingOption {
	return func(l *domain.Listing) { l.AvailableFrom = timeutil.MustParseDate(date) }
}

// WithAmenities sets the amenity tags.
func WithAmenities(amenities ...string) ListingOption {
	return func(l *domain.Listing) { l.Amenities = amenities }
}

// WithRoom appends a room offering.
func WithRoom(roomType string, price int, available bool) ListingOption {
	return func(l *domain.Listing) {
		l.RoomTypes = append(l.RoomTypes, domain.RoomOffering{Type: roomType, Price: price, Available: available})
	}
}

// IDs returns the ids of listings in order.
func IDs(listings []domain.Listing) []string {
	ids := make([]string, len(listings))
	for i := range listings {
		ids[i] = listings[i].ID
	}
	return ids
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
