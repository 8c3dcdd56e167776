package usecase

import (
	"sort"

	"github.com/pgnest/pg-listing-search/internal/domain"
)

// SortListings orders listings according to the given sort key.
// Uses stable sorting, so listings that compare equal keep their relative input order.
//
// Sort keys:
//   - SortRecommended (default): input order, unchanged
//   - SortPriceLow: ascending by Price
//   - SortPriceHigh: descending by Price
//   - SortRating: descending by Rating
//   - SortNewest: descending by AvailableFrom (latest date first)
//
// Behavior:
//   - Returns empty slice for empty input
//   - Unknown sortBy is treated as SortRecommended
//   - Does NOT mutate the original listings slice
func SortListings(listings []domain.Listing, sortBy domain.SortKey) []domain.Listing {
	result := make([]domain.Listing, len(listings))
	copy(result, listings)

	if len(result) <= 1 {
		return result
	}

	switch sortBy {
	case domain.SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case domain.SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case domain.SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case domain.SortNewest:
		// Calendar comparison; "2024-10-1" is newer than "2024-9-30".
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].AvailableFrom.After(result[j].AvailableFrom)
		})
	}

	return result
}

// Query runs the full pipeline: filter by search text and configuration, then sort.
// The result is a new slice; listings is never modified.
func Query(listings []domain.Listing, searchText string, f domain.FilterConfiguration, sortBy domain.SortKey) []domain.Listing {
	return SortListings(ApplyFilters(listings, searchText, f), sortBy)
}
