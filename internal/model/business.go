package model

// FacilityTypeUnknown is the sentinel used when the extraction pipeline could
// not determine a facility type. It is excluded from derived facility-type
// listings.
const FacilityTypeUnknown = "Unknown"

// Business is one care-facility listing, the base unit of the dataset.
// The slug is unique across the whole collection and acts as the primary key;
// (city_slug, category_slug) is shared by many businesses.
//
// Records are immutable after load. Content changes require regenerating the
// site data files out of band.
type Business struct {
	// Identity
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CategorySlug string `json:"category_slug"`
	City         string `json:"city"`
	CitySlug     string `json:"city_slug"`

	// Contact & location
	FormattedAddress   string   `json:"formatted_address"`
	ShortAddress       string   `json:"short_address"`
	Phone              string   `json:"phone"`
	PhoneInternational string   `json:"phone_international"`
	Website            string   `json:"website"`
	Lat                *float64 `json:"lat"` // nil when geocoding failed
	Lng                *float64 `json:"lng"`
	GoogleMapsLink     string   `json:"google_maps_link"`

	// Ratings
	Rating  *float64 `json:"rating"` // nil means unrated, distinct from 0
	Reviews int      `json:"reviews"`

	// Operations
	WorkingHours []string `json:"working_hours"`

	// Extracted content
	Description      string   `json:"description"`
	Specialities     []string `json:"specialities"`
	Services         []string `json:"services"`
	FacilityFeatures []string `json:"facility_features"`
	FacilityType     string   `json:"facility_type"`
	BedCount         *int     `json:"bed_count"`
	TrustSignals     []string `json:"trust_signals"`
	IsPremium        bool     `json:"is_premium"`

	// Google Places
	GooglePlaceID string  `json:"google_place_id"`
	Photos        []Photo `json:"photos,omitempty"`
}

// Photo is one Google Places photo reference with author attribution.
type Photo struct {
	Name               string             `json:"name"`
	WidthPx            int                `json:"widthPx"`
	HeightPx           int                `json:"heightPx"`
	AuthorAttributions []PhotoAttribution `json:"authorAttributions"`
}

// PhotoAttribution credits the photo author as required by the Places API
// terms of service.
type PhotoAttribution struct {
	DisplayName string `json:"displayName"`
	URI         string `json:"uri"`
	PhotoURI    string `json:"photoUri"`
}

// HasSpeciality reports whether the business carries the given speciality tag.
// Matching is exact and case-sensitive.
func (b Business) HasSpeciality(name string) bool {
	for _, s := range b.Specialities {
		if s == name {
			return true
		}
	}
	return false
}
