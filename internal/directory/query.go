package directory

import (
	"github.com/careatlas/directory-cli/internal/model"
)

// Listing queries are plain predicate filters over the business collection.
// They preserve the dataset's relative order and return an empty slice for
// unknown slugs or names; an empty result is a valid outcome, not an error.

// BusinessesByCategory returns every business in the given category.
func (d *Directory) BusinessesByCategory(categorySlug string) []model.Business {
	return d.filter(func(b model.Business) bool {
		return b.CategorySlug == categorySlug
	})
}

// BusinessesByCity returns every business in the given city.
func (d *Directory) BusinessesByCity(citySlug string) []model.Business {
	return d.filter(func(b model.Business) bool {
		return b.CitySlug == citySlug
	})
}

// BusinessesByCityAndCategory returns every business matching both slugs.
func (d *Directory) BusinessesByCityAndCategory(citySlug, categorySlug string) []model.Business {
	return d.filter(func(b model.Business) bool {
		return b.CitySlug == citySlug && b.CategorySlug == categorySlug
	})
}

// BusinessesByCityAndSpeciality returns every business in the city carrying
// the speciality. The speciality is matched by display name, exact and
// case-sensitive.
func (d *Directory) BusinessesByCityAndSpeciality(citySlug, specialityName string) []model.Business {
	return d.filter(func(b model.Business) bool {
		return b.CitySlug == citySlug && b.HasSpeciality(specialityName)
	})
}

// BusinessesBySpeciality returns every business carrying the speciality,
// regardless of city.
func (d *Directory) BusinessesBySpeciality(specialityName string) []model.Business {
	return d.filter(func(b model.Business) bool {
		return b.HasSpeciality(specialityName)
	})
}

func (d *Directory) filter(keep func(model.Business) bool) []model.Business {
	out := []model.Business{}
	for _, b := range d.store.Businesses() {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
