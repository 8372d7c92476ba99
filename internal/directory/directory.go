// Package directory derives filtered views, cross-reference combinations,
// and related-listing recommendations from the loaded dataset.
package directory

import (
	"sort"
	"sync"

	"github.com/careatlas/directory-cli/internal/dataset"
	"github.com/careatlas/directory-cli/internal/model"
	"github.com/careatlas/directory-cli/internal/slug"
)

// Directory answers listing-page queries against an immutable dataset
// snapshot. Derived indexes (speciality lists, slug maps, city×speciality
// combos) are built on first use and cached for the process lifetime; the
// sync.Once guards make first access safe under concurrent requests.
//
// Construct one Directory per loaded Store. It holds no other state.
type Directory struct {
	store *dataset.Store

	specOnce     sync.Once
	specialities []string

	typeOnce      sync.Once
	facilityTypes []string

	slugOnce sync.Once
	slugMap  map[string]string

	comboOnce sync.Once
	combos    []model.CitySpeciality
}

// New creates a Directory over the given store.
func New(store *dataset.Store) *Directory {
	return &Directory{store: store}
}

// Store returns the underlying dataset snapshot.
func (d *Directory) Store() *dataset.Store {
	return d.store
}

// Specialities returns the deduplicated union of every speciality tag across
// all businesses, sorted ascending. The result is cached; callers must not
// modify it.
func (d *Directory) Specialities() []string {
	d.specOnce.Do(func() {
		seen := map[string]bool{}
		for _, b := range d.store.Businesses() {
			for _, s := range b.Specialities {
				seen[s] = true
			}
		}
		d.specialities = sortedKeys(seen)
	})
	return d.specialities
}

// FacilityTypes returns the deduplicated, sorted facility types, excluding
// empty values and the "Unknown" sentinel.
func (d *Directory) FacilityTypes() []string {
	d.typeOnce.Do(func() {
		seen := map[string]bool{}
		for _, b := range d.store.Businesses() {
			if b.FacilityType == "" || b.FacilityType == model.FacilityTypeUnknown {
				continue
			}
			seen[b.FacilityType] = true
		}
		d.facilityTypes = sortedKeys(seen)
	})
	return d.facilityTypes
}

// SpecialitySlugMap maps each speciality's slug back to its display name.
// When two display names normalize to the same slug the last one seen in
// dataset order wins; slugs are not guaranteed collision-free.
func (d *Directory) SpecialitySlugMap() map[string]string {
	d.slugOnce.Do(func() {
		m := map[string]string{}
		for _, b := range d.store.Businesses() {
			for _, s := range b.Specialities {
				m[slug.Make(s)] = s
			}
		}
		d.slugMap = m
	})
	return d.slugMap
}

// SpecialityBySlug resolves a speciality slug to its display name.
func (d *Directory) SpecialityBySlug(s string) (string, bool) {
	name, ok := d.SpecialitySlugMap()[s]
	return name, ok
}

// CitySpecialityCombos returns every (city, speciality) pair with at least
// one matching business, with its count. Combos appear in order of first
// appearance while iterating businesses in dataset order.
func (d *Directory) CitySpecialityCombos() []model.CitySpeciality {
	d.comboOnce.Do(func() {
		type key struct{ city, spec string }
		index := map[key]int{}
		var combos []model.CitySpeciality

		for _, b := range d.store.Businesses() {
			for _, s := range b.Specialities {
				k := key{b.CitySlug, slug.Make(s)}
				if i, ok := index[k]; ok {
					combos[i].Count++
					continue
				}
				index[k] = len(combos)
				combos = append(combos, model.CitySpeciality{
					CitySlug:       b.CitySlug,
					SpecialitySlug: k.spec,
					SpecialityName: s,
					Count:          1,
				})
			}
		}
		d.combos = combos
	})
	return d.combos
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
