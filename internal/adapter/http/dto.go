package http

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pgnest/pg-listing-search/internal/domain"
)

// rentPrinter groups digits the way rents are quoted in India (1,50,000).
var rentPrinter = message.NewPrinter(language.MustParse("en-IN"))

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	Metadata MetadataDTO  `json:"metadata"`
	Listings []ListingDTO `json:"listings"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults      int    `json:"total_results" example:"2"`
	TotalListings     int    `json:"total_listings" example:"8"`
	ActiveFilterCount int    `json:"active_filter_count" example:"1"`
	SearchQuery       string `json:"search_query,omitempty" example:"bangalore"`
	SortBy            string `json:"sort_by" example:"price-low"`
	Source            string `json:"source,omitempty" example:"embedded"`
	SearchTimeMs      int64  `json:"search_time_ms" example:"1"`
}

// ListingDTO is the data transfer object for a single PG.
type ListingDTO struct {
	ID                 string        `json:"id" example:"1"`
	Name               string        `json:"name" example:"Urban Nest PG"`
	Location           string        `json:"location" example:"Koramangala, Bangalore"`
	City               string        `json:"city" example:"Bangalore"`
	Price              int           `json:"price" example:"15000"`
	PriceDisplay       string        `json:"price_display" example:"₹15,000/month"`
	Rating             float64       `json:"rating" example:"4.5"`
	ReviewCount        int           `json:"review_count" example:"128"`
	Images             []string      `json:"images,omitempty"`
	Amenities          []string      `json:"amenities"`
	RoomTypes          []RoomTypeDTO `json:"room_types"`
	AvailableRoomTypes []string      `json:"available_room_types"`
	GenderPreference   string        `json:"gender_preference" example:"Co-ed"`
	AvailableFrom      string        `json:"available_from" example:"2024-01-15"`
	Description        string        `json:"description,omitempty"`
	Meals              bool          `json:"meals"`
	Parking            bool          `json:"parking"`
	NearbyPlaces       []string      `json:"nearby_places,omitempty"`
	Rules              []string      `json:"rules,omitempty"`
	ContactPhone       string        `json:"contact_phone,omitempty"`
	ContactWhatsApp    string        `json:"contact_whatsapp,omitempty"`
	SecurityDeposit    int           `json:"security_deposit,omitempty"`
}

// RoomTypeDTO represents one room offering.
type RoomTypeDTO struct {
	Type         string `json:"type" example:"Single Sharing"`
	Price        int    `json:"price" example:"18000"`
	PriceDisplay string `json:"price_display" example:"₹18,000/month"`
	Available    bool   `json:"available" example:"true"`
}

// FilterStateResponse is a filter configuration together with its active category count.
type FilterStateResponse struct {
	Filters           domain.FilterConfiguration `json:"filters"`
	ActiveFilterCount int                        `json:"active_filter_count" example:"2"`
}

// ToSearchResponseDTO converts a domain search response to its DTO.
func ToSearchResponseDTO(resp *domain.SearchResponse) *SearchResponseDTO {
	listings := make([]ListingDTO, len(resp.Listings))
	for i := range resp.Listings {
		listings[i] = ToListingDTO(&resp.Listings[i])
	}

	return &SearchResponseDTO{
		Metadata: MetadataDTO{
			TotalResults:      resp.Metadata.TotalResults,
			TotalListings:     resp.Metadata.TotalListings,
			ActiveFilterCount: resp.Metadata.ActiveFilterCount,
			SearchQuery:       resp.Metadata.SearchQuery,
			SortBy:            string(resp.Metadata.SortBy),
			Source:            resp.Metadata.Source,
			SearchTimeMs:      resp.Metadata.SearchTimeMs,
		},
		Listings: listings,
	}
}

// ToListingDTO converts a domain listing to its DTO.
func ToListingDTO(l *domain.Listing) ListingDTO {
	rooms := make([]RoomTypeDTO, len(l.RoomTypes))
	available := make([]string, 0, len(l.RoomTypes))
	for i, rt := range l.RoomTypes {
		rooms[i] = RoomTypeDTO{
			Type:         rt.Type,
			Price:        rt.Price,
			PriceDisplay: formatRent(rt.Price),
			Available:    rt.Available,
		}
		if rt.Available {
			available = append(available, rt.Type)
		}
	}

	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return ListingDTO{
		ID:                 l.ID,
		Name:               l.Name,
		Location:           l.Location,
		City:               l.City,
		Price:              l.Price,
		PriceDisplay:       formatRent(l.Price),
		Rating:             l.Rating,
		ReviewCount:        l.ReviewCount,
		Images:             l.Images,
		Amenities:          amenities,
		RoomTypes:          rooms,
		AvailableRoomTypes: available,
		GenderPreference:   string(l.GenderPreference),
		AvailableFrom:      l.AvailableFrom.String(),
		Description:        l.Description,
		Meals:              l.Meals,
		Parking:            l.Parking,
		NearbyPlaces:       l.NearbyPlaces,
		Rules:              l.Rules,
		ContactPhone:       l.ContactPhone,
		ContactWhatsApp:    l.ContactWhatsApp,
		SecurityDeposit:    l.SecurityDeposit,
	}
}

// ToFilterStateResponse pairs a configuration with its active filter count.
func ToFilterStateResponse(f domain.FilterConfiguration) *FilterStateResponse {
	return &FilterStateResponse{
		Filters:           f,
		ActiveFilterCount: domain.ActiveFilterCount(f),
	}
}

// formatRent formats a monthly rent, e.g. 15000 -> "₹15,000/month".
func formatRent(amount int) string {
	return rentPrinter.Sprintf("₹%d/month", amount)
}
