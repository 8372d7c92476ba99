package sitegen

import "fmt"

// CategoryMeta is the editorial metadata for a category page.
type CategoryMeta struct {
	DisplayName    string
	Slug           string
	Icon           string
	Color          string
	Description    string
	SEOTitle       string
	SEODescription string
}

// CityMeta is the editorial metadata for a city page.
type CityMeta struct {
	DisplayName    string
	Slug           string
	Description    string
	SEOTitle       string
	SEODescription string
}

// Metadata supplies per-category and per-city editorial text. Defaults ship
// in-repo; the metasync command can overlay entries maintained in Notion.
type Metadata struct {
	Categories map[string]CategoryMeta
	Cities     map[string]CityMeta
}

// DefaultMetadata returns the built-in editorial metadata tables.
func DefaultMetadata() Metadata {
	return Metadata{Categories: defaultCategoryMeta(), Cities: defaultCityMeta()}
}

// Merge overlays non-empty override entries onto m.
func (m Metadata) Merge(overrides Metadata) Metadata {
	out := Metadata{
		Categories: map[string]CategoryMeta{},
		Cities:     map[string]CityMeta{},
	}
	for k, v := range m.Categories {
		out.Categories[k] = v
	}
	for k, v := range overrides.Categories {
		out.Categories[k] = v
	}
	for k, v := range m.Cities {
		out.Cities[k] = v
	}
	for k, v := range overrides.Cities {
		out.Cities[k] = v
	}
	return out
}

// cityMetaOrDefault synthesizes metadata for cities without an editorial
// entry so that every city still gets a coherent page.
func (m Metadata) cityMetaOrDefault(city, citySlug string) CityMeta {
	if meta, ok := m.Cities[city]; ok {
		return meta
	}
	return CityMeta{
		DisplayName:    city,
		Slug:           citySlug,
		Description:    fmt.Sprintf("Find quality healthcare and care facilities in %s.", city),
		SEOTitle:       fmt.Sprintf("Best Care Facilities in %s - Directory & Ratings", city),
		SEODescription: fmt.Sprintf("Find top-rated nursing homes, elder care, post-hospital care, and home health care in %s.", city),
	}
}

func (m Metadata) categoryMetaOrDefault(category, categorySlug string) CategoryMeta {
	if meta, ok := m.Categories[category]; ok {
		return meta
	}
	return CategoryMeta{
		DisplayName: category,
		Slug:        categorySlug,
		Description: fmt.Sprintf("%s facilities across India.", category),
	}
}

func defaultCategoryMeta() map[string]CategoryMeta {
	return map[string]CategoryMeta{
		"Nursing Homes": {
			DisplayName:    "Nursing Homes",
			Slug:           "nursing-homes",
			Icon:           "building-2",
			Color:          "#2563EB",
			Description:    "Professional nursing care facilities providing 24/7 medical attention, rehabilitation support, and compassionate care for patients recovering from surgery, illness, or managing chronic conditions.",
			SEOTitle:       "Best Nursing Homes in India - Ratings & Services",
			SEODescription: "Find top-rated nursing homes across India. Compare facilities, check ratings, compare services, and contact nursing homes near you.",
		},
		"Elder Care": {
			DisplayName:    "Elder Care",
			Slug:           "elder-care",
			Icon:           "heart-handshake",
			Color:          "#7C3AED",
			Description:    "Dedicated elder care facilities and old age homes providing dignified living, medical support, recreational activities, and companionship for senior citizens.",
			SEOTitle:       "Best Elder Care Facilities in India - Old Age Homes",
			SEODescription: "Find trusted elder care facilities and old age homes across India. Compare services, amenities, and ratings for senior living.",
		},
		"Post-Hospital Care": {
			DisplayName:    "Post-Hospital Care",
			Slug:           "post-hospital-care",
			Icon:           "activity",
			Color:          "#059669",
			Description:    "Specialized post-hospital care centers offering physiotherapy, occupational therapy, stroke recovery, post-surgical rehabilitation, and neurological recovery programs.",
			SEOTitle:       "Best Post-Hospital Care in India - Recovery & Rehab",
			SEODescription: "Find top post-hospital care centers across India. Physiotherapy, post-surgical rehab, stroke recovery, and neurological rehabilitation.",
		},
		"Home Health Care": {
			DisplayName:    "Home Health Care",
			Slug:           "home-health-care",
			Icon:           "home",
			Color:          "#DC2626",
			Description:    "Professional home health care services bringing medical care, nursing, physiotherapy, and elder care support to your doorstep.",
			SEOTitle:       "Best Home Health Care Services in India",
			SEODescription: "Find professional home health care services across India. Nursing at home, physiotherapy, elder care, and post-surgical support.",
		},
	}
}

func defaultCityMeta() map[string]CityMeta {
	cities := []CityMeta{
		{DisplayName: "Delhi", Slug: "delhi", Description: "India's capital territory with the highest concentration of healthcare and care facilities."},
		{DisplayName: "Gurgaon", Slug: "gurgaon", Description: "Millennium City with world-class healthcare infrastructure and modern care facilities."},
		{DisplayName: "Noida", Slug: "noida", Description: "Growing hub of quality healthcare services in the NCR region."},
		{DisplayName: "Ghaziabad", Slug: "ghaziabad", Description: "Gateway to UP with expanding healthcare infrastructure."},
		{DisplayName: "Faridabad", Slug: "faridabad", Description: "Major Haryana city with growing healthcare and care facility network."},
		{DisplayName: "Greater Noida", Slug: "greater-noida", Description: "Emerging residential and healthcare hub in the NCR."},
		{DisplayName: "Mumbai", Slug: "mumbai", Description: "India's financial capital with a comprehensive network of healthcare and care facilities."},
		{DisplayName: "Bangalore", Slug: "bangalore", Description: "India's tech hub with world-class healthcare infrastructure and modern care facilities."},
		{DisplayName: "Chennai", Slug: "chennai", Description: "Major healthcare destination in South India with a wide range of care facilities."},
		{DisplayName: "Hyderabad", Slug: "hyderabad", Description: "Growing healthcare hub in Telangana with modern care facilities and services."},
		{DisplayName: "Pune", Slug: "pune", Description: "Maharashtra's second-largest city with excellent healthcare and care facility options."},
		{DisplayName: "Kolkata", Slug: "kolkata", Description: "Eastern India's premier city with established healthcare and elder care infrastructure."},
		{DisplayName: "Ahmedabad", Slug: "ahmedabad", Description: "Gujarat's largest city with a growing network of healthcare and care facilities."},
		{DisplayName: "Jaipur", Slug: "jaipur", Description: "Rajasthan's capital with expanding healthcare infrastructure and care facilities."},
		{DisplayName: "Lucknow", Slug: "lucknow", Description: "Uttar Pradesh's capital with growing healthcare and elder care services."},
		{DisplayName: "Chandigarh", Slug: "chandigarh", Description: "Well-planned city with excellent healthcare infrastructure and care services."},
		{DisplayName: "Kochi", Slug: "kochi", Description: "Kerala's commercial capital with renowned healthcare and elder care facilities."},
	}

	out := make(map[string]CityMeta, len(cities))
	for _, c := range cities {
		c.SEOTitle = fmt.Sprintf("Best Care Facilities in %s - Directory & Ratings", c.DisplayName)
		c.SEODescription = fmt.Sprintf("Find top-rated nursing homes, elder care, post-hospital care, and home health care in %s.", c.DisplayName)
		out[c.DisplayName] = c
	}
	return out
}
