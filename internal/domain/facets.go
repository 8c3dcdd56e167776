package domain

import "sort"

// Fixed option lists shown in the filter sidebar.
var (
	// DefaultCities are the cities offered even if the catalog has no listing there yet.
	DefaultCities = []string{"Bangalore", "Delhi", "Mumbai", "Pune"}

	// RoomTypeOptions are the sharing types a PG can offer.
	RoomTypeOptions = []string{"Single Sharing", "Double Sharing", "Triple Sharing"}

	// AmenityOptions is the full list of amenity tags a listing may carry.
	AmenityOptions = []string{
		"WiFi", "AC", "Power Backup", "CCTV Security", "Housekeeping",
		"Laundry", "Meals", "Hot Water", "Parking", "Gym",
		"Common Area", "Refrigerator", "Water Purifier", "Study Room",
		"Gaming Area", "Lift", "Balcony", "Attached Bathroom",
	}
)

// PriceBounds describes the price slider.
type PriceBounds struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

// Facets holds every option list a filter UI needs.
type Facets struct {
	Cities           []string           `json:"cities"`
	GenderPreference []GenderPreference `json:"genderPreference"`
	RoomTypes        []string           `json:"roomTypes"`
	Amenities        []string           `json:"amenities"`
	Price            PriceBounds        `json:"price"`
	SortOptions      []SortOption       `json:"sortOptions"`
}

// BuildFacets derives the option lists for a catalog.
// Cities and room types found in the catalog are appended (sorted) after the fixed lists.
// Amenity tags outside AmenityOptions are appended the same way.
func BuildFacets(listings []Listing) Facets {
	cities := mergeOptions(DefaultCities, func(yield func(string)) {
		for i := range listings {
			yield(listings[i].City)
		}
	})
	roomTypes := mergeOptions(RoomTypeOptions, func(yield func(string)) {
		for i := range listings {
			for _, rt := range listings[i].RoomTypes {
				yield(rt.Type)
			}
		}
	})
	amenities := mergeOptions(AmenityOptions, func(yield func(string)) {
		for i := range listings {
			for _, a := range listings[i].Amenities {
				yield(a)
			}
		}
	})

	return Facets{
		Cities:           cities,
		GenderPreference: append([]GenderPreference(nil), GenderOptions...),
		RoomTypes:        roomTypes,
		Amenities:        amenities,
		Price: PriceBounds{
			Min:  DefaultPriceMin,
			Max:  DefaultPriceMax,
			Step: DefaultPriceStep,
		},
		SortOptions: append([]SortOption(nil), SortOptions...),
	}
}

// mergeOptions returns fixed followed by the sorted values from each that are not already present.
func mergeOptions(fixed []string, each func(yield func(string))) []string {
	seen := make(map[string]struct{}, len(fixed))
	result := make([]string, 0, len(fixed))
	for _, v := range fixed {
		seen[v] = struct{}{}
		result = append(result, v)
	}

	var extra []string
	each(func(v string) {
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		extra = append(extra, v)
	})
	sort.Strings(extra)

	return append(result, extra...)
}
