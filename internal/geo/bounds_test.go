package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/careatlas/directory-cli/internal/model"
)

func ptr(v float64) *float64 { return &v }

func box(minX, minY, maxX, maxY float64) *geom.Bounds {
	b := geom.NewBounds(geom.XY)
	b.Set(minX, minY, maxX, maxY)
	return b
}

func testBounds() CityBounds {
	return CityBounds{
		// Rough WGS84 boxes, lng first.
		"Mumbai": box(72.7, 18.8, 73.1, 19.3),
		"Delhi":  box(76.8, 28.4, 77.4, 28.9),
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	businesses := []model.Business{
		{Slug: "inside-mumbai", City: "Mumbai", Lat: ptr(19.07), Lng: ptr(72.87)},
		{Slug: "outside-mumbai", City: "Mumbai", Lat: ptr(28.6), Lng: ptr(77.2)},
		{Slug: "inside-delhi", City: "Delhi", Lat: ptr(28.6), Lng: ptr(77.2)},
	}

	violations := Check(testBounds(), businesses)
	require.Len(t, violations, 1)
	assert.Equal(t, "outside-mumbai", violations[0].Slug)
	assert.Equal(t, "Mumbai", violations[0].City)
	assert.Equal(t, 28.6, violations[0].Lat)
	assert.Equal(t, 77.2, violations[0].Lng)
}

func TestCheckSkipsUngeocoded(t *testing.T) {
	t.Parallel()

	businesses := []model.Business{
		{Slug: "no-coords", City: "Mumbai"},
		{Slug: "lat-only", City: "Mumbai", Lat: ptr(19.07)},
	}

	assert.Empty(t, Check(testBounds(), businesses))
}

func TestCheckSkipsUnknownCities(t *testing.T) {
	t.Parallel()

	businesses := []model.Business{
		{Slug: "x", City: "Indore", Lat: ptr(22.7), Lng: ptr(75.8)},
	}

	assert.Empty(t, Check(testBounds(), businesses))
}

func TestCheckBoundaryPointInside(t *testing.T) {
	t.Parallel()

	bounds := CityBounds{"Mumbai": box(72.7, 18.8, 73.1, 19.3)}
	businesses := []model.Business{
		{Slug: "corner", City: "Mumbai", Lat: ptr(18.8), Lng: ptr(72.7)},
	}

	// Points on the box edge count as inside.
	assert.Empty(t, Check(bounds, businesses))
}
