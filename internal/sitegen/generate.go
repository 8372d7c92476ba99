package sitegen

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/model"
	"github.com/careatlas/directory-cli/internal/slug"
)

// Generate builds all five site data collections from the extracted source
// records. Source entries are keyed by place ID; they are processed in
// sorted key order so slug suffix assignment is deterministic across runs.
func Generate(src map[string]SourceRecord, photos map[string]PlacePhotos, meta Metadata) (*Artifacts, error) {
	businesses := buildBusinesses(src, photos, meta)

	a := &Artifacts{
		Businesses:     businesses,
		Cities:         buildCities(businesses, meta),
		Categories:     buildCategories(businesses, meta),
		CityCategories: buildCityCategories(businesses),
		SearchIndex:    buildSearchIndex(businesses),
	}

	zap.L().Info("site data generated",
		zap.Int("businesses", len(a.Businesses)),
		zap.Int("cities", len(a.Cities)),
		zap.Int("categories", len(a.Categories)),
		zap.Int("city_category_combos", len(a.CityCategories)),
	)

	return a, nil
}

func buildBusinesses(src map[string]SourceRecord, photos map[string]PlacePhotos, meta Metadata) []model.Business {
	ids := make([]string, 0, len(src))
	for id := range src {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var businesses []model.Business
	seen := map[string]bool{}

	for _, pid := range ids {
		entry := src[pid]
		if !ActiveCategories[entry.Category] {
			continue
		}
		if entry.Name == "" || entry.City == "" {
			continue
		}

		base := slug.Fold(entry.Name + "-" + entry.City)
		if base == "" {
			base = slug.Fold(entry.Name)
		}
		if base == "" {
			base = "facility-" + strings.ToLower(pid[:min(8, len(pid))])
		}
		s := slug.Unique(base, seen)
		seen[s] = true

		catMeta := meta.categoryMetaOrDefault(entry.Category, slug.Make(entry.Category))
		cityMeta := meta.cityMetaOrDefault(entry.City, slug.Make(entry.City))

		facilityType := entry.FacilityType
		if facilityType == "" {
			facilityType = model.FacilityTypeUnknown
		}

		b := model.Business{
			Slug:               s,
			Name:               entry.Name,
			Category:           entry.Category,
			CategorySlug:       catMeta.Slug,
			City:               entry.City,
			CitySlug:           cityMeta.Slug,
			FormattedAddress:   entry.FormattedAddress,
			ShortAddress:       entry.ShortAddress,
			Phone:              entry.Phone,
			PhoneInternational: entry.PhoneInternational,
			Website:            entry.Website,
			Lat:                entry.Lat,
			Lng:                entry.Lng,
			GoogleMapsLink:     entry.GoogleMapsLink,
			Rating:             entry.Rating,
			Reviews:            entry.Reviews,
			WorkingHours:       entry.WorkingHours,
			Description:        entry.Description,
			Specialities:       entry.Specialities,
			Services:           []string{},
			FacilityFeatures:   entry.FacilityFeatures,
			FacilityType:       facilityType,
			BedCount:           entry.BedCount,
			TrustSignals:       entry.TrustSignals,
			IsPremium:          entry.IsPremium,
			GooglePlaceID:      pid,
		}

		if p, ok := photos[pid]; ok && len(p.Photos) > 0 {
			b.Photos = p.Photos
		}

		businesses = append(businesses, b)
	}

	// Display order everywhere downstream: rating desc, then reviews desc.
	sort.SliceStable(businesses, func(i, j int) bool {
		ri, rj := ratingOf(businesses[i]), ratingOf(businesses[j])
		if ri != rj {
			return ri > rj
		}
		return businesses[i].Reviews > businesses[j].Reviews
	})

	return businesses
}

func buildCities(businesses []model.Business, meta Metadata) map[string]model.City {
	grouped := groupBy(businesses, func(b model.Business) string { return b.City })

	out := map[string]model.City{}
	for city, bizs := range grouped {
		cityMeta := meta.cityMetaOrDefault(city, bizs[0].CitySlug)

		catCounts := map[string]int{}
		for _, b := range bizs {
			catCounts[b.Category]++
		}

		topRated := make([]model.Business, len(bizs))
		copy(topRated, bizs)
		sort.SliceStable(topRated, func(i, j int) bool {
			ri, rj := ratingOf(topRated[i]), ratingOf(topRated[j])
			if ri != rj {
				return ri > rj
			}
			return topRated[i].Reviews > topRated[j].Reviews
		})
		if len(topRated) > 5 {
			topRated = topRated[:5]
		}
		topSlugs := make([]string, len(topRated))
		for i, b := range topRated {
			topSlugs[i] = b.Slug
		}

		out[cityMeta.Slug] = model.City{
			DisplayName:    cityMeta.DisplayName,
			Slug:           cityMeta.Slug,
			Description:    cityMeta.Description,
			SEOTitle:       cityMeta.SEOTitle,
			SEODescription: cityMeta.SEODescription,
			Count:          len(bizs),
			CategoryCounts: catCounts,
			TopRatedSlugs:  topSlugs,
			AvgRating:      avgRating(bizs),
		}
	}
	return out
}

func buildCategories(businesses []model.Business, meta Metadata) map[string]model.Category {
	grouped := groupBy(businesses, func(b model.Business) string { return b.Category })

	out := map[string]model.Category{}
	for cat, bizs := range grouped {
		catMeta := meta.categoryMetaOrDefault(cat, bizs[0].CategorySlug)

		cityCounts := map[string]int{}
		for _, b := range bizs {
			cityCounts[b.City]++
		}

		out[catMeta.Slug] = model.Category{
			DisplayName:    catMeta.DisplayName,
			Slug:           catMeta.Slug,
			CategoryName:   cat,
			Icon:           catMeta.Icon,
			Color:          catMeta.Color,
			Description:    catMeta.Description,
			SEOTitle:       catMeta.SEOTitle,
			SEODescription: catMeta.SEODescription,
			Count:          len(bizs),
			CityCounts:     cityCounts,
			AvgRating:      avgRating(bizs),
		}
	}
	return out
}

func buildCityCategories(businesses []model.Business) map[string]model.CityCategory {
	out := map[string]model.CityCategory{}
	for _, b := range businesses {
		key := b.CitySlug + "/" + b.CategorySlug
		combo, ok := out[key]
		if !ok {
			combo = model.CityCategory{
				City:           b.City,
				CitySlug:       b.CitySlug,
				Category:       b.Category,
				CategorySlug:   b.CategorySlug,
				Slug:           key,
				SEOTitle:       fmt.Sprintf("Best %s in %s - Ratings & Services", b.Category, b.City),
				SEODescription: fmt.Sprintf("Find top-rated %s in %s. Compare facilities, compare services, and get contact information.", strings.ToLower(b.Category), b.City),
			}
		}
		combo.BusinessSlugs = append(combo.BusinessSlugs, b.Slug)
		combo.Count++
		out[key] = combo
	}
	return out
}

func buildSearchIndex(businesses []model.Business) []model.SearchEntry {
	index := make([]model.SearchEntry, len(businesses))
	for i, b := range businesses {
		index[i] = model.SearchEntryOf(b)
	}
	return index
}

func groupBy(businesses []model.Business, key func(model.Business) string) map[string][]model.Business {
	out := map[string][]model.Business{}
	for _, b := range businesses {
		k := key(b)
		out[k] = append(out[k], b)
	}
	return out
}

func ratingOf(b model.Business) float64 {
	if b.Rating == nil {
		return 0
	}
	return *b.Rating
}

// avgRating averages over rated businesses only, rounded to 2 decimals.
func avgRating(businesses []model.Business) float64 {
	var sum float64
	var n int
	for _, b := range businesses {
		if b.Rating != nil {
			sum += *b.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(int(sum/float64(n)*100+0.5)) / 100
}
