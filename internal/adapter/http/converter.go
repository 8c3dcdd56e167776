package http

import (
	"github.com/pgnest/pg-listing-search/internal/domain"
)

// ToDomainFilters converts a FilterDTO to a domain.FilterConfiguration.
// Categories the DTO omits keep their default values.
func ToDomainFilters(dto *FilterDTO) domain.FilterConfiguration {
	filters := domain.DefaultFilterConfiguration()
	if dto == nil {
		return filters
	}

	if len(dto.PriceRange) == 2 {
		filters = filters.WithPriceRange(dto.PriceRange[0], dto.PriceRange[1])
	}

	prefs := make([]domain.GenderPreference, 0, len(dto.GenderPreference))
	for _, g := range dto.GenderPreference {
		if pref, err := domain.ParseGenderPreference(g); err == nil {
			prefs = append(prefs, pref)
		}
	}

	return filters.
		WithCities(dto.Cities...).
		WithGenderPreference(prefs...).
		WithAmenities(dto.Amenities...).
		WithRoomTypes(dto.RoomTypes...)
}

// ToSearchRequest converts a SearchListingsRequest to a domain.SearchRequest.
// The sort key is passed through as given; the use case resolves aliases and unknown keys.
func ToSearchRequest(req *SearchListingsRequest) domain.SearchRequest {
	return domain.SearchRequest{
		SearchText: req.Search,
		Filters:    ToDomainFilters(req.Filters),
		SortBy:     domain.SortKey(req.SortBy),
	}
}
