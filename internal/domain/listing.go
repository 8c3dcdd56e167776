// Package domain contains the core business entities and rules for the PG listing search system.
// These entities are source-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgnest/pg-listing-search/internal/infrastructure/timeutil"
)

// GenderPreference is the occupant policy of a PG.
type GenderPreference string

// Supported gender preferences.
const (
	GenderMale   GenderPreference = "Male"
	GenderFemale GenderPreference = "Female"
	GenderCoed   GenderPreference = "Co-ed"
)

// GenderOptions lists every gender preference in display order.
var GenderOptions = []GenderPreference{GenderMale, GenderFemale, GenderCoed}

// IsValid checks if the gender preference is one of the supported values.
func (g GenderPreference) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderCoed:
		return true
	default:
		return false
	}
}

// ParseGenderPreference converts a string to a GenderPreference (case-insensitive).
// "coed" and "co ed" are accepted as aliases of Co-ed.
func ParseGenderPreference(s string) (GenderPreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	case "co-ed", "coed", "co ed":
		return GenderCoed, nil
	default:
		return "", fmt.Errorf("%w: unknown gender preference %q", ErrInvalidInput, s)
	}
}

// Listing represents a single PG accommodation.
// The query engine reads listings but never modifies them.
type Listing struct {
	// ID is an opaque unique identifier
	ID string `json:"id" yaml:"id"`

	// Name is the display name of the PG (e.g., "Urban Nest PG")
	Name string `json:"name" yaml:"name"`

	// Location is the free-form locality text (e.g., "Koramangala, Bangalore")
	Location string `json:"location" yaml:"location"`

	// City is the city the PG is in
	City string `json:"city" yaml:"city"`

	// Price is the starting monthly rent
	Price int `json:"price" yaml:"price"`

	// Rating is the average review rating
	Rating float64 `json:"rating" yaml:"rating"`

	// ReviewCount is the number of reviews behind Rating
	ReviewCount int `json:"reviewCount,omitempty" yaml:"reviewCount,omitempty"`

	// Images are image URLs, in carousel order
	Images []string `json:"images,omitempty" yaml:"images,omitempty"`

	// Amenities is the set of amenity tags offered
	Amenities []string `json:"amenities" yaml:"amenities"`

	// RoomTypes are the room offerings in display order
	RoomTypes []RoomOffering `json:"roomTypes" yaml:"roomTypes"`

	// GenderPreference is the occupant policy
	GenderPreference GenderPreference `json:"genderPreference" yaml:"genderPreference"`

	// AvailableFrom is the first date the PG accepts occupants
	AvailableFrom timeutil.Date `json:"availableFrom" yaml:"availableFrom"`

	Description     string   `json:"description,omitempty" yaml:"description,omitempty"`
	Meals           bool     `json:"meals,omitempty" yaml:"meals,omitempty"`
	Parking         bool     `json:"parking,omitempty" yaml:"parking,omitempty"`
	NearbyPlaces    []string `json:"nearbyPlaces,omitempty" yaml:"nearbyPlaces,omitempty"`
	Rules           []string `json:"rules,omitempty" yaml:"rules,omitempty"`
	ContactPhone    string   `json:"contactPhone,omitempty" yaml:"contactPhone,omitempty"`
	ContactWhatsApp string   `json:"contactWhatsApp,omitempty" yaml:"contactWhatsApp,omitempty"`
	SecurityDeposit int      `json:"securityDeposit,omitempty" yaml:"securityDeposit,omitempty"`
}

// RoomOffering is one room type a PG offers.
type RoomOffering struct {
	// Type is the sharing type (e.g., "Single Sharing")
	Type string `json:"type" yaml:"type"`

	// Price is the monthly rent for this room type
	Price int `json:"price" yaml:"price"`

	// Available reports whether a room of this type can be booked
	Available bool `json:"available" yaml:"available"`
}

// HasAmenity reports whether the listing offers the given amenity tag.
func (l *Listing) HasAmenity(tag string) bool {
	for _, a := range l.Amenities {
		if a == tag {
			return true
		}
	}
	return false
}

// OffersAvailableRoom reports whether the listing has an available offering of the given type.
// An offering of that type that is not available does not count.
func (l *Listing) OffersAvailableRoom(roomType string) bool {
	for _, rt := range l.RoomTypes {
		if rt.Type == roomType && rt.Available {
			return true
		}
	}
	return false
}

// Validate checks the structural requirements of a listing.
// Returns a wrapped ErrInvalidInput error if validation fails.
func (l *Listing) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: listing id is required", ErrInvalidInput)
	}
	if l.City == "" {
		return fmt.Errorf("%w: listing %s: city is required", ErrInvalidInput, l.ID)
	}
	if l.Price < 0 {
		return fmt.Errorf("%w: listing %s: price must be non-negative, got %d", ErrInvalidInput, l.ID, l.Price)
	}
	if !l.GenderPreference.IsValid() {
		return fmt.Errorf("%w: listing %s: genderPreference must be one of: Male, Female, Co-ed; got %q",
			ErrInvalidInput, l.ID, l.GenderPreference)
	}
	if l.AvailableFrom.IsZero() {
		return fmt.Errorf("%w: listing %s: availableFrom is required", ErrInvalidInput, l.ID)
	}
	for i, rt := range l.RoomTypes {
		if rt.Type == "" {
			return fmt.Errorf("%w: listing %s: roomTypes[%d].type is required", ErrInvalidInput, l.ID, i)
		}
	}
	return nil
}

// ValidateListings validates every listing and checks that ids are unique.
func ValidateListings(listings []Listing) error {
	seen := make(map[string]struct{}, len(listings))
	for i := range listings {
		if err := listings[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[listings[i].ID]; dup {
			return fmt.Errorf("%w: duplicate listing id %q", ErrInvalidInput, listings[i].ID)
		}
		seen[listings[i].ID] = struct{}{}
	}
	return nil
}

//go:generate mockgen -source=listing.go -destination=mock_source.go -package=domain

// ListingSource supplies the listing collection the engine runs over.
// Implementations must return records that are safe to share read-only.
type ListingSource interface {
	// Name returns a short identifier for logs (e.g., "embedded", "file").
	Name() string

	// Listings returns the full collection.
	Listings(ctx context.Context) ([]Listing, error)
}
