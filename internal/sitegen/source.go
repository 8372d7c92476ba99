// Package sitegen builds the site data artifacts (businesses, cities,
// categories, city+category combos, search index) from extracted source
// records. It is the Go port of the final stage of the data-preparation
// pipeline; its output is what the dataset loader consumes.
package sitegen

import (
	"github.com/careatlas/directory-cli/internal/model"
)

// Active categories. Records in any other category are skipped entirely.
var ActiveCategories = map[string]bool{
	"Nursing Homes":      true,
	"Elder Care":         true,
	"Post-Hospital Care": true,
	"Home Health Care":   true,
}

// SourceRecord is one extracted listing, keyed by Google Place ID in the
// extraction output file.
type SourceRecord struct {
	Name               string   `json:"name"`
	Category           string   `json:"category"`
	City               string   `json:"city"`
	FormattedAddress   string   `json:"formatted_address"`
	ShortAddress       string   `json:"short_address"`
	Phone              string   `json:"phone"`
	PhoneInternational string   `json:"phone_international"`
	Website            string   `json:"website"`
	Lat                *float64 `json:"lat"`
	Lng                *float64 `json:"lng"`
	GoogleMapsLink     string   `json:"google_maps_link"`
	Rating             *float64 `json:"rating"`
	Reviews            int      `json:"reviews"`
	WorkingHours       []string `json:"working_hours"`
	Description        string   `json:"description"`
	Specialities       []string `json:"specialities"`
	FacilityFeatures   []string `json:"facility_features"`
	FacilityType       string   `json:"facility_type"`
	BedCount           *int     `json:"bed_count"`
	TrustSignals       []string `json:"trust_signals"`
	IsPremium          bool     `json:"is_premium"`
}

// PlacePhotos is the photo set fetched for one place.
type PlacePhotos struct {
	PhotoCount int           `json:"photo_count"`
	Photos     []model.Photo `json:"photos"`
}

// Artifacts holds the five generated collections.
type Artifacts struct {
	Businesses     []model.Business
	Cities         map[string]model.City
	Categories     map[string]model.Category
	CityCategories map[string]model.CityCategory
	SearchIndex    []model.SearchEntry
}
