// Package http provides the HTTP handler layer for the listing search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pgnest/pg-listing-search/internal/domain"
)

// SearchListingsRequest represents the request body for a catalog search.
type SearchListingsRequest struct {
	// Search is matched case-insensitively against name, location and city
	Search string `json:"search" example:"koramangala"`

	// Filters contains optional filtering criteria. Omitted means the default configuration.
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy is one of: recommended, price-low, price-high, rating, newest.
	// Unrecognised values fall back to recommended.
	SortBy string `json:"sortBy,omitempty" example:"price-low"`
}

// FilterDTO represents a filter configuration on the wire.
// Example: {"priceRange": [10000, 20000], "cities": ["Bangalore"], "amenities": ["WiFi", "AC"]}
type FilterDTO struct {
	// PriceRange is the inclusive [min, max] rent range
	PriceRange []int `json:"priceRange,omitempty" example:"5000,30000"`

	// Cities keeps listings located in any of these cities
	Cities []string `json:"cities,omitempty" example:"Bangalore,Delhi"`

	// GenderPreference keeps listings with any of these policies: Male, Female, Co-ed
	GenderPreference []string `json:"genderPreference,omitempty" example:"Co-ed"`

	// Amenities keeps listings offering every one of these tags
	Amenities []string `json:"amenities,omitempty" example:"WiFi,AC"`

	// RoomTypes keeps listings with an available offering of any of these types
	RoomTypes []string `json:"roomTypes,omitempty" example:"Single Sharing"`
}

// QueryListingsRequest runs a search over caller-supplied records instead of the catalog.
type QueryListingsRequest struct {
	// Records is a JSON array of listing records
	Records json.RawMessage `json:"records" swaggertype:"array,object"`

	SearchListingsRequest
}

// ToggleFilterRequest flips one value of a checkbox-style category.
type ToggleFilterRequest struct {
	// Filters is the current configuration. Omitted means the default configuration.
	Filters *FilterDTO `json:"filters,omitempty"`

	// Category is one of: cities, genderPreference, amenities, roomTypes
	Category string `json:"category" example:"amenities"`

	// Value is the option to add or remove
	Value string `json:"value" example:"WiFi"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and normalizes filter values in place.
func (r *SearchListingsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validate(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchListingsRequest) validate(errs *ValidationErrors) {
	r.SortBy = strings.TrimSpace(r.SortBy)
	r.Filters.validate("filters", errs)
}

// Validate validates the query request. Record contents are checked later, against the listing schema.
func (r *QueryListingsRequest) Validate() error {
	errs := &ValidationErrors{}

	trimmed := bytes.TrimSpace(r.Records)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		errs.Add("records", "records is required")
	}
	r.SearchListingsRequest.validate(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the toggle request.
func (r *ToggleFilterRequest) Validate() error {
	errs := &ValidationErrors{}

	if !domain.FilterCategory(r.Category).IsValid() {
		errs.Add("category", "category must be one of: cities, genderPreference, amenities, roomTypes")
	}

	r.Value = strings.TrimSpace(r.Value)
	if r.Value == "" {
		errs.Add("value", "value is required")
	} else if r.Category == string(domain.CategoryGenderPreference) {
		if _, err := domain.ParseGenderPreference(r.Value); err != nil {
			errs.Add("value", "value must be one of: Male, Female, Co-ed")
		}
	}

	r.Filters.validate("filters", errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validate checks each filter category. A nil receiver is the default configuration.
// A reversed price range is accepted: it is well-formed and simply matches nothing.
func (f *FilterDTO) validate(prefix string, errs *ValidationErrors) {
	if f == nil {
		return
	}

	if f.PriceRange != nil {
		field := prefix + ".priceRange"
		switch {
		case len(f.PriceRange) != 2:
			errs.Add(field, "priceRange must contain exactly two values [min, max]")
		case f.PriceRange[0] < 0 || f.PriceRange[1] < 0:
			errs.Add(field, "priceRange values must be non-negative")
		}
	}

	for i, g := range f.GenderPreference {
		pref, err := domain.ParseGenderPreference(g)
		if err != nil {
			errs.Add(fmt.Sprintf("%s.genderPreference[%d]", prefix, i),
				"genderPreference must be one of: Male, Female, Co-ed")
			continue
		}
		f.GenderPreference[i] = string(pref) // Normalize to canonical spelling
	}

	validateOptions(prefix+".cities", f.Cities, errs)
	validateOptions(prefix+".amenities", f.Amenities, errs)
	validateOptions(prefix+".roomTypes", f.RoomTypes, errs)
}

// validateOptions trims each selected option and rejects blank ones.
func validateOptions(field string, values []string, errs *ValidationErrors) {
	for i, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			errs.Add(fmt.Sprintf("%s[%d]", field, i), "value must not be empty")
			continue
		}
		values[i] = trimmed
	}
}
