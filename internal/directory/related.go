package directory

import (
	"github.com/careatlas/directory-cli/internal/model"
)

// DefaultRelatedLimit caps the "similar facilities" strip on detail pages.
const DefaultRelatedLimit = 4

// Related returns up to limit businesses related to b, for cross-linking on
// detail pages. Tier 1 is every other business sharing both category and
// city; tier 2 is every other business sharing the category in a different
// city. Tiers keep dataset order and are concatenated then truncated. There
// is no scoring: rating, distance, and speciality overlap are ignored on
// purpose.
//
// b is trusted as given; it does not need to exist in the store, and the
// only exclusion is by slug equality.
func (d *Directory) Related(b model.Business, limit int) []model.Business {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	out := []model.Business{}
	for _, other := range d.store.Businesses() {
		if other.Slug == b.Slug || other.Category != b.Category {
			continue
		}
		if other.City == b.City {
			out = append(out, other)
			if len(out) == limit {
				return out
			}
		}
	}

	// Tier 1 left room: fill with same-category businesses from other cities.
	for _, other := range d.store.Businesses() {
		if other.Slug == b.Slug || other.Category != b.Category || other.City == b.City {
			continue
		}
		out = append(out, other)
		if len(out) == limit {
			return out
		}
	}

	return out
}
