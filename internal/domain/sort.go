package domain

import "strings"

// SortKey defines the available orderings for listing results.
type SortKey string

// Available sort keys.
const (
	// SortRecommended keeps the catalog order (default)
	SortRecommended SortKey = "recommended"

	// SortPriceLow sorts by price ascending (cheapest first)
	SortPriceLow SortKey = "price-low"

	// SortPriceHigh sorts by price descending (most expensive first)
	SortPriceHigh SortKey = "price-high"

	// SortRating sorts by rating descending (highest rated first)
	SortRating SortKey = "rating"

	// SortNewest sorts by availableFrom descending (latest date first)
	SortNewest SortKey = "newest"
)

// SortOption pairs a sort key with its display label.
type SortOption struct {
	Value SortKey `json:"value"`
	Label string  `json:"label"`
}

// SortOptions lists the sort keys in menu order.
var SortOptions = []SortOption{
	{Value: SortRecommended, Label: "Recommended"},
	{Value: SortPriceLow, Label: "Price: Low to High"},
	{Value: SortPriceHigh, Label: "Price: High to Low"},
	{Value: SortRating, Label: "Highest Rated"},
	{Value: SortNewest, Label: "Newest First"},
}

// IsValid checks if the sort key is a known value.
func (s SortKey) IsValid() bool {
	switch s {
	case SortRecommended, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return true
	default:
		return false
	}
}

// sortKeyAliases maps accepted spellings to canonical keys.
var sortKeyAliases = map[string]SortKey{
	"":                  SortRecommended,
	"recommended":       SortRecommended,
	"price-low":         SortPriceLow,
	"price-asc":         SortPriceLow,
	"price-ascending":   SortPriceLow,
	"price-high":        SortPriceHigh,
	"price-desc":        SortPriceHigh,
	"price-descending":  SortPriceHigh,
	"rating":            SortRating,
	"rating-desc":       SortRating,
	"rating-descending": SortRating,
	"newest":            SortNewest,
	"newest-first":      SortNewest,
}

// ParseSortKey converts a string to a SortKey.
// Matching ignores case and treats "_" like "-". Unknown values yield SortRecommended.
func ParseSortKey(s string) SortKey {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if key, ok := sortKeyAliases[normalized]; ok {
		return key
	}
	return SortRecommended
}

// IsKnownSortKey reports whether s is one of the accepted spellings.
func IsKnownSortKey(s string) bool {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	_, ok := sortKeyAliases[normalized]
	return ok
}
