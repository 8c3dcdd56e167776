// Package mock provides test doubles for the listing search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific catalogs).
package mock

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/timeutil"
)

// Source is a configurable mock implementation of domain.ListingSource.
// It supports configurable delays, errors, and catalogs for testing
// scenarios such as timeouts and unavailable catalogs.
type Source struct {
	name      string
	listings  []domain.Listing
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{name: name}
}

// WithListings configures the source to return the given listings.
func (s *Source) WithListings(listings []domain.Listing) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = listings
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
	return s
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return s.name
}

// Listings implements domain.ListingSource.Listings.
// It respects context cancellation, applies the configured delay,
// and returns a copy of the configured listings or the configured error.
func (s *Source) Listings(ctx context.Context) ([]domain.Listing, error) {
	s.mu.Lock()
	s.callCount++
	delay, err, listings := s.delay, s.err, s.listings
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err != nil {
		return nil, err
	}

	return slices.Clone(listings), nil
}

// CallCount returns the number of times Listings was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset resets the call count to zero.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

// Ensure Source implements domain.ListingSource at compile time.
var _ domain.ListingSource = (*Source)(nil)

var (
	sampleCities  = []string{"Bangalore", "Delhi", "Mumbai", "Pune"}
	sampleGenders = []domain.GenderPreference{domain.GenderMale, domain.GenderFemale, domain.GenderCoed}
)

// SampleListings returns count listings with every required field populated.
// Cities, genders and room availability rotate so that every filter has matches;
// prices run from 6000 upwards in steps of 1000, so all fall in the default range for count <= 25.
func SampleListings(count int) []domain.Listing {
	listings := make([]domain.Listing, count)
	for i := 0; i < count; i++ {
		city := sampleCities[i%len(sampleCities)]
		price := 6000 + i*1000

		listings[i] = domain.Listing{
			ID:               fmt.Sprintf("pg-%d", i+1),
			Name:             fmt.Sprintf("Sample PG %d", i+1),
			Location:         fmt.Sprintf("Sector %d, %s", i+1, city),
			City:             city,
			Price:            price,
			Rating:           3.5 + float64(i%4)*0.4,
			Amenities:        sampleAmenities(i),
			GenderPreference: sampleGenders[i%len(sampleGenders)],
			AvailableFrom:    timeutil.NewDate(2024, time.January, 1+i%28),
			RoomTypes: []domain.RoomOffering{
				{Type: "Single Sharing", Price: price + 4000, Available: i%2 == 0},
				{Type: "Double Sharing", Price: price, Available: true},
			},
		}
	}

	return listings
}

func sampleAmenities(i int) []string {
	amenities := []string{"WiFi"}
	if i%2 == 0 {
		amenities = append(amenities, "AC")
	}
	if i%3 == 0 {
		amenities = append(amenities, "Parking")
	}
	return amenities
}
