package domain

import "encoding/json"

// SearchRequest is one invocation of the query engine: free text, filters and ordering.
type SearchRequest struct {
	// SearchText is matched case-insensitively against name, location and city.
	// Empty or whitespace-only means no text constraint.
	SearchText string `json:"search"`

	// Filters narrows the collection
	Filters FilterConfiguration `json:"filters"`

	// SortBy orders the filtered collection
	SortBy SortKey `json:"sortBy"`
}

// NewSearchRequest returns a request with no text, default filters and recommended ordering.
func NewSearchRequest() SearchRequest {
	return SearchRequest{
		Filters: DefaultFilterConfiguration(),
		SortBy:  SortRecommended,
	}
}

// UnmarshalJSON decodes a request on top of NewSearchRequest so that omitted filters stay at their defaults.
func (r *SearchRequest) UnmarshalJSON(data []byte) error {
	type plain SearchRequest
	decoded := plain(NewSearchRequest())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*r = SearchRequest(decoded)
	return nil
}
