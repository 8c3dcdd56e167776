package domain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Default price bounds. The default range is also the "cleared" state.
const (
	DefaultPriceMin  = 5000
	DefaultPriceMax  = 30000
	DefaultPriceStep = 1000
)

// PriceRange is an inclusive [Min, Max] rent range.
// On the wire it is a two-element array, e.g. [5000, 30000].
type PriceRange struct {
	Min int
	Max int
}

// DefaultPriceRange returns the cleared price range.
func DefaultPriceRange() PriceRange {
	return PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax}
}

// Contains checks if price falls within the range, inclusive at both ends.
// A range with Min > Max contains nothing.
func (r PriceRange) Contains(price int) bool {
	return price >= r.Min && price <= r.Max
}

// IsOrdered reports whether Min <= Max.
func (r PriceRange) IsOrdered() bool {
	return r.Min <= r.Max
}

// IsDefault reports whether the range equals the cleared range.
func (r PriceRange) IsDefault() bool {
	return r == DefaultPriceRange()
}

// MarshalJSON encodes the range as [min, max].
func (r PriceRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Min, r.Max})
}

// UnmarshalJSON decodes a [min, max] array.
func (r *PriceRange) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var bounds []int
	if err := json.Unmarshal(data, &bounds); err != nil {
		return fmt.Errorf("%w: priceRange must be an array of two integers", ErrInvalidInput)
	}
	if len(bounds) != 2 {
		return fmt.Errorf("%w: priceRange must contain exactly two values, got %d", ErrInvalidInput, len(bounds))
	}
	r.Min, r.Max = bounds[0], bounds[1]
	return nil
}

// FilterConfiguration holds the user-selected constraints that narrow the listing collection.
//
// It is a value: every change produces a new FilterConfiguration and the
// slices of the previous value are never modified. Callers can therefore keep
// an old configuration around and compare it against the new one.
type FilterConfiguration struct {
	// PriceRange bounds the listing price (inclusive)
	PriceRange PriceRange `json:"priceRange"`

	// Cities restricts results to these cities. Empty means no constraint.
	Cities []string `json:"cities"`

	// GenderPreference restricts results to these occupant policies. Empty means no constraint.
	GenderPreference []GenderPreference `json:"genderPreference"`

	// Amenities requires ALL of these amenity tags. Empty means no constraint.
	Amenities []string `json:"amenities"`

	// RoomTypes requires an available offering of ANY of these types. Empty means no constraint.
	RoomTypes []string `json:"roomTypes"`
}

// DefaultFilterConfiguration returns the session-start configuration: default price bounds and no selections.
func DefaultFilterConfiguration() FilterConfiguration {
	return FilterConfiguration{
		PriceRange:       DefaultPriceRange(),
		Cities:           []string{},
		GenderPreference: []GenderPreference{},
		Amenities:        []string{},
		RoomTypes:        []string{},
	}
}

// UnmarshalJSON decodes a configuration on top of the default, so omitted
// fields keep their default values and null selections become empty.
func (f *FilterConfiguration) UnmarshalJSON(data []byte) error {
	type plain FilterConfiguration
	decoded := plain(DefaultFilterConfiguration())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*f = FilterConfiguration(decoded).clone()
	return nil
}

// Reset returns the default configuration.
func (f FilterConfiguration) Reset() FilterConfiguration {
	return DefaultFilterConfiguration()
}

// IsDefault reports whether no category deviates from the default.
func (f FilterConfiguration) IsDefault() bool {
	return ActiveFilterCount(f) == 0
}

// WithPriceRange returns a copy with the price range replaced.
func (f FilterConfiguration) WithPriceRange(min, max int) FilterConfiguration {
	next := f.clone()
	next.PriceRange = PriceRange{Min: min, Max: max}
	return next
}

// WithCities returns a copy with the city selection replaced.
func (f FilterConfiguration) WithCities(cities ...string) FilterConfiguration {
	next := f.clone()
	next.Cities = cloneOrEmpty(cities)
	return next
}

// WithGenderPreference returns a copy with the gender selection replaced.
func (f FilterConfiguration) WithGenderPreference(prefs ...GenderPreference) FilterConfiguration {
	next := f.clone()
	next.GenderPreference = cloneOrEmpty(prefs)
	return next
}

// WithAmenities returns a copy with the amenity selection replaced.
func (f FilterConfiguration) WithAmenities(amenities ...string) FilterConfiguration {
	next := f.clone()
	next.Amenities = cloneOrEmpty(amenities)
	return next
}

// WithRoomTypes returns a copy with the room type selection replaced.
func (f FilterConfiguration) WithRoomTypes(roomTypes ...string) FilterConfiguration {
	next := f.clone()
	next.RoomTypes = cloneOrEmpty(roomTypes)
	return next
}

// FilterCategory names a checkbox-style filter category.
type FilterCategory string

// Toggleable filter categories.
const (
	CategoryCities           FilterCategory = "cities"
	CategoryGenderPreference FilterCategory = "genderPreference"
	CategoryAmenities        FilterCategory = "amenities"
	CategoryRoomTypes        FilterCategory = "roomTypes"
)

// IsValid checks if the category is a toggleable one.
func (c FilterCategory) IsValid() bool {
	switch c {
	case CategoryCities, CategoryGenderPreference, CategoryAmenities, CategoryRoomTypes:
		return true
	default:
		return false
	}
}

// Toggle flips membership of value in the given category and returns the new configuration.
// Gender values are parsed, so "coed" toggles Co-ed.
func (f FilterConfiguration) Toggle(category FilterCategory, value string) (FilterConfiguration, error) {
	next := f.clone()

	switch category {
	case CategoryCities:
		next.Cities = ToggleMembership(f.Cities, value)
	case CategoryAmenities:
		next.Amenities = ToggleMembership(f.Amenities, value)
	case CategoryRoomTypes:
		next.RoomTypes = ToggleMembership(f.RoomTypes, value)
	case CategoryGenderPreference:
		pref, err := ParseGenderPreference(value)
		if err != nil {
			return f, err
		}
		next.GenderPreference = ToggleMembership(f.GenderPreference, pref)
	default:
		return f, fmt.Errorf("%w: unknown filter category %q", ErrInvalidInput, category)
	}

	return next, nil
}

// ToggleMembership returns a new slice equal to set with value removed if present, or appended if absent.
// The input slice is never modified.
func ToggleMembership[T comparable](set []T, value T) []T {
	result := make([]T, 0, len(set)+1)
	found := false
	for _, v := range set {
		if v == value {
			found = true
			continue
		}
		result = append(result, v)
	}
	if !found {
		result = append(result, value)
	}
	return result
}

// ActiveFilterCount counts the filter categories that deviate from the default.
// A non-default price range counts as one, and so does each non-empty selection.
func ActiveFilterCount(f FilterConfiguration) int {
	count := 0
	if !f.PriceRange.IsDefault() {
		count++
	}
	if len(f.Cities) > 0 {
		count++
	}
	if len(f.GenderPreference) > 0 {
		count++
	}
	if len(f.Amenities) > 0 {
		count++
	}
	if len(f.RoomTypes) > 0 {
		count++
	}
	return count
}

// clone copies every slice so that the result shares no backing arrays with f.
func (f FilterConfiguration) clone() FilterConfiguration {
	return FilterConfiguration{
		PriceRange:       f.PriceRange,
		Cities:           cloneOrEmpty(f.Cities),
		GenderPreference: cloneOrEmpty(f.GenderPreference),
		Amenities:        cloneOrEmpty(f.Amenities),
		RoomTypes:        cloneOrEmpty(f.RoomTypes),
	}
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
