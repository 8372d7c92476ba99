package model

// City is aggregate metadata for one city, keyed by its slug in cities.json.
// Count must equal the number of businesses whose city_slug matches.
type City struct {
	DisplayName    string         `json:"display_name"`
	Slug           string         `json:"slug"`
	Description    string         `json:"description"`
	SEOTitle       string         `json:"seo_title"`
	SEODescription string         `json:"seo_description"`
	Count          int            `json:"count"`
	CategoryCounts map[string]int `json:"category_counts"`
	TopRatedSlugs  []string       `json:"top_rated_slugs"`
	AvgRating      float64        `json:"avg_rating"`
}

// Category is aggregate metadata for one category, keyed by its slug in
// categories.json. Same shape as City but pivoted on category.
type Category struct {
	DisplayName    string         `json:"display_name"`
	Slug           string         `json:"slug"`
	CategoryName   string         `json:"category_name"`
	Icon           string         `json:"icon,omitempty"`
	Color          string         `json:"color,omitempty"`
	Description    string         `json:"description"`
	SEOTitle       string         `json:"seo_title"`
	SEODescription string         `json:"seo_description"`
	Count          int            `json:"count"`
	CityCounts     map[string]int `json:"city_counts"`
	AvgRating      float64        `json:"avg_rating"`
}

// CityCategory is the materialized join of one city and one category. Its
// slug is "city_slug/category_slug" and BusinessSlugs lists exactly the
// businesses belonging to that combination, in dataset order.
type CityCategory struct {
	City           string   `json:"city"`
	CitySlug       string   `json:"city_slug"`
	Category       string   `json:"category"`
	CategorySlug   string   `json:"category_slug"`
	Slug           string   `json:"slug"`
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
	BusinessSlugs  []string `json:"business_slugs"`
	Count          int      `json:"count"`
}

// CitySpeciality is a derived (city, speciality) combination with the number
// of businesses carrying that speciality in that city. It is computed from
// the business collection and never persisted; only combinations with at
// least one business exist.
type CitySpeciality struct {
	CitySlug       string `json:"city_slug"`
	SpecialitySlug string `json:"speciality_slug"`
	SpecialityName string `json:"speciality_name"`
	Count          int    `json:"count"`
}
