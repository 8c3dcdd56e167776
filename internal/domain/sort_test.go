package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input string
		want  SortKey
	}{
		{"", SortRecommended},
		{"recommended", SortRecommended},
		{"price-low", SortPriceLow},
		{"PRICE_LOW", SortPriceLow},
		{"price-ascending", SortPriceLow},
		{"price-high", SortPriceHigh},
		{"price-descending", SortPriceHigh},
		{"rating", SortRating},
		{"rating-descending", SortRating},
		{"newest", SortNewest},
		{" newest-first ", SortNewest},
		{"cheapest", SortRecommended},
		{"distance", SortRecommended},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortKey(tt.input))
		})
	}
}

func TestSortKey_IsValid(t *testing.T) {
	for _, opt := range SortOptions {
		assert.True(t, opt.Value.IsValid(), opt.Value)
	}
	assert.False(t, SortKey("price-asc").IsValid(), "aliases are not canonical keys")
	assert.False(t, SortKey("").IsValid())
}

func TestIsKnownSortKey(t *testing.T) {
	assert.True(t, IsKnownSortKey(""))
	assert.True(t, IsKnownSortKey("Price-Desc"))
	assert.False(t, IsKnownSortKey("distance"))
}
