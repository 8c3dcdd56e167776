// Package usecase provides the business logic for PG listing search.
package usecase

import (
	"github.com/pgnest/pg-listing-search/internal/domain"
	"github.com/pgnest/pg-listing-search/internal/infrastructure/textmatch"
)

// filterCriteria is a FilterConfiguration prepared for repeated matching.
type filterCriteria struct {
	text      textmatch.Matcher
	price     domain.PriceRange
	cities    map[string]struct{}
	genders   map[domain.GenderPreference]struct{}
	amenities []string
	roomTypes []string
}

// newFilterCriteria pre-builds lookup sets so each listing is checked in O(selected values).
func newFilterCriteria(searchText string, f domain.FilterConfiguration) filterCriteria {
	return filterCriteria{
		text:      textmatch.NewMatcher(searchText),
		price:     f.PriceRange,
		cities:    buildSet(f.Cities),
		genders:   buildSet(f.GenderPreference),
		amenities: f.Amenities,
		roomTypes: f.RoomTypes,
	}
}

// ApplyFilters returns the listings that satisfy the search text and every filter category.
//
// Behavior:
//   - Each category with an empty selection passes every listing
//   - Amenities are conjunctive: a listing must offer ALL selected amenities
//   - Room types are disjunctive: ANY selected type must be offered AND available
//   - A price range with min > max matches nothing
//   - Input order is preserved and the input slice is not modified
func ApplyFilters(listings []domain.Listing, searchText string, f domain.FilterConfiguration) []domain.Listing {
	criteria := newFilterCriteria(searchText, f)

	result := make([]domain.Listing, 0, len(listings))
	for i := range listings {
		if criteria.matches(&listings[i]) {
			result = append(result, listings[i])
		}
	}
	return result
}

// matches checks a single listing against all categories.
func (c *filterCriteria) matches(l *domain.Listing) bool {
	return matchesText(l, c.text) &&
		c.price.Contains(l.Price) &&
		matchesSet(l.City, c.cities) &&
		matchesSet(l.GenderPreference, c.genders) &&
		matchesAllAmenities(l, c.amenities) &&
		matchesAnyAvailableRoom(l, c.roomTypes)
}

func matchesText(l *domain.Listing, m textmatch.Matcher) bool {
	return m.MatchAny(l.Name, l.Location, l.City)
}

// matchesSet treats an empty set as "no constraint".
func matchesSet[T comparable](value T, set map[T]struct{}) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[value]
	return ok
}

func matchesAllAmenities(l *domain.Listing, amenities []string) bool {
	for _, a := range amenities {
		if !l.HasAmenity(a) {
			return false
		}
	}
	return true
}

func matchesAnyAvailableRoom(l *domain.Listing, roomTypes []string) bool {
	if len(roomTypes) == 0 {
		return true
	}
	for _, rt := range roomTypes {
		if l.OffersAvailableRoom(rt) {
			return true
		}
	}
	return false
}

// buildSet creates a lookup set from a selection.
func buildSet[T comparable](values []T) map[T]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// filterWith keeps the listings for which keep returns true.
func filterWith(listings []domain.Listing, keep func(*domain.Listing) bool) []domain.Listing {
	result := make([]domain.Listing, 0, len(listings))
	for i := range listings {
		if keep(&listings[i]) {
			result = append(result, listings[i])
		}
	}
	return result
}

// FilterBySearchText keeps listings whose name, location or city contains searchText (case-insensitive).
// An empty or whitespace-only searchText keeps everything.
func FilterBySearchText(listings []domain.Listing, searchText string) []domain.Listing {
	m := textmatch.NewMatcher(searchText)
	return filterWith(listings, func(l *domain.Listing) bool { return matchesText(l, m) })
}

// FilterByPriceRange keeps listings priced within r (inclusive).
func FilterByPriceRange(listings []domain.Listing, r domain.PriceRange) []domain.Listing {
	return filterWith(listings, func(l *domain.Listing) bool { return r.Contains(l.Price) })
}

// FilterByCities keeps listings located in any of cities. Empty cities keeps everything.
func FilterByCities(listings []domain.Listing, cities []string) []domain.Listing {
	set := buildSet(cities)
	return filterWith(listings, func(l *domain.Listing) bool { return matchesSet(l.City, set) })
}

// FilterByGender keeps listings with any of the given gender preferences. Empty prefs keeps everything.
func FilterByGender(listings []domain.Listing, prefs []domain.GenderPreference) []domain.Listing {
	set := buildSet(prefs)
	return filterWith(listings, func(l *domain.Listing) bool { return matchesSet(l.GenderPreference, set) })
}

// FilterByAmenities keeps listings offering every one of amenities.
func FilterByAmenities(listings []domain.Listing, amenities []string) []domain.Listing {
	return filterWith(listings, func(l *domain.Listing) bool { return matchesAllAmenities(l, amenities) })
}

// FilterByRoomTypes keeps listings with an available offering of any of roomTypes.
func FilterByRoomTypes(listings []domain.Listing, roomTypes []string) []domain.Listing {
	return filterWith(listings, func(l *domain.Listing) bool { return matchesAnyAvailableRoom(l, roomTypes) })
}
