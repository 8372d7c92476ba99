package model

// SearchEntry is the lightweight projection of a Business shipped in
// search_index.json for client-side search.
type SearchEntry struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	CategorySlug string   `json:"category_slug"`
	City         string   `json:"city"`
	CitySlug     string   `json:"city_slug"`
	Rating       *float64 `json:"rating"`
	Reviews      int      `json:"reviews"`
	HasWebsite   bool     `json:"has_website"`
	Phone        string   `json:"phone"`
	Specialities []string `json:"specialities"`
	Services     []string `json:"services"`
	IsPremium    bool     `json:"is_premium"`
}

// SearchEntryOf projects a Business into its search-index form.
func SearchEntryOf(b Business) SearchEntry {
	return SearchEntry{
		Slug:         b.Slug,
		Name:         b.Name,
		Category:     b.Category,
		CategorySlug: b.CategorySlug,
		City:         b.City,
		CitySlug:     b.CitySlug,
		Rating:       b.Rating,
		Reviews:      b.Reviews,
		HasWebsite:   b.Website != "",
		Phone:        b.Phone,
		Specialities: b.Specialities,
		Services:     b.Services,
		IsPremium:    b.IsPremium,
	}
}
