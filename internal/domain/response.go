package domain

// SearchResponse is the ordered result of a search together with execution metadata.
type SearchResponse struct {
	// Metadata describes the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Listings are the matching listings in result order
	Listings []Listing `json:"listings"`
}

// SearchMetadata contains information about a search execution.
type SearchMetadata struct {
	// TotalResults is the number of listings returned
	TotalResults int `json:"total_results"`

	// TotalListings is the size of the collection that was searched
	TotalListings int `json:"total_listings"`

	// ActiveFilterCount is the number of filter categories in effect
	ActiveFilterCount int `json:"active_filter_count"`

	// SearchQuery echoes the free-text query
	SearchQuery string `json:"search_query,omitempty"`

	// SortBy is the ordering actually applied
	SortBy SortKey `json:"sort_by"`

	// Source names the listing source that supplied the collection
	Source string `json:"source,omitempty"`

	// SearchTimeMs is the search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchResponse builds a response, filling the counts from listings and req.
func NewSearchResponse(req SearchRequest, listings []Listing, totalListings int, metadata SearchMetadata) SearchResponse {
	if listings == nil {
		listings = []Listing{}
	}
	metadata.TotalResults = len(listings)
	metadata.TotalListings = totalListings
	metadata.ActiveFilterCount = ActiveFilterCount(req.Filters)
	metadata.SearchQuery = req.SearchText
	metadata.SortBy = req.SortBy

	return SearchResponse{
		Metadata: metadata,
		Listings: listings,
	}
}

// IDs returns the listing ids in result order.
func (r *SearchResponse) IDs() []string {
	ids := make([]string, len(r.Listings))
	for i := range r.Listings {
		ids[i] = r.Listings[i].ID
	}
	return ids
}
