// Package geo validates business coordinates against city boundaries.
package geo

import (
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/model"
)

// CityBounds maps a city display name to its bounding box in WGS84.
type CityBounds map[string]*geom.Bounds

// Violation flags a business whose coordinates fall outside its city's
// bounding box.
type Violation struct {
	Slug string
	City string
	Lat  float64
	Lng  float64
}

// LoadBounds reads city polygons from a shapefile and returns per-city
// bounding boxes. The shapefile must carry a NAME attribute matching the
// dataset's city display names.
func LoadBounds(path string) (CityBounds, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geo: open shapefile %s", path)
	}
	defer reader.Close() //nolint:errcheck

	nameIdx := -1
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), "NAME") {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return nil, eris.New("geo: shapefile has no NAME field")
	}

	bounds := CityBounds{}
	for reader.Next() {
		_, shape := reader.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		name := strings.TrimSpace(reader.Attribute(nameIdx))
		if name == "" {
			continue
		}

		b := geom.NewBounds(geom.XY)
		b.Set(poly.Box.MinX, poly.Box.MinY, poly.Box.MaxX, poly.Box.MaxY)

		// A city split across multiple polygons gets the union box.
		if existing, ok := bounds[name]; ok {
			existing.Set(
				min(existing.Min(0), b.Min(0)), min(existing.Min(1), b.Min(1)),
				max(existing.Max(0), b.Max(0)), max(existing.Max(1), b.Max(1)),
			)
		} else {
			bounds[name] = b
		}
	}

	zap.L().Info("city boundaries loaded",
		zap.String("path", path),
		zap.Int("cities", len(bounds)),
	)
	return bounds, nil
}

// Check returns a violation for every geocoded business whose coordinates
// fall outside its city's bounding box. Businesses without coordinates or
// in cities without a known boundary are skipped.
func Check(bounds CityBounds, businesses []model.Business) []Violation {
	var out []Violation
	for _, b := range businesses {
		if b.Lat == nil || b.Lng == nil {
			continue
		}
		cityBounds, ok := bounds[b.City]
		if !ok {
			continue
		}
		if !cityBounds.OverlapsPoint(geom.XY, geom.Coord{*b.Lng, *b.Lat}) {
			out = append(out, Violation{
				Slug: b.Slug,
				City: b.City,
				Lat:  *b.Lat,
				Lng:  *b.Lng,
			})
		}
	}
	return out
}
