// Package location handles distances and map regions
package location

import (
	"math"
	"sort"

	"github.com/umahmood/haversine"

	"github.com/randytsao24/decomap/internal/models"
)

const metersPerDegreeLat = 111320.0

// Distance returns the great-circle distance in meters between two points
func Distance(a, b models.Coordinate) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lng},
		haversine.Coord{Lat: b.Lat, Lon: b.Lng},
	)
	return km * 1000
}

// RegionAround returns a region spanning twice the radius in both directions
func RegionAround(center models.Coordinate, radiusMeters float64) models.Region {
	latDelta := radiusMeters / metersPerDegreeLat

	// Longitude degrees shrink towards the poles
	lngDelta := latDelta
	if cos := math.Cos(center.Lat * math.Pi / 180); cos > 1e-9 {
		lngDelta = latDelta / cos
	}

	return models.Region{
		Center:        center,
		LatSpanMeters: radiusMeters * 2,
		LngSpanMeters: radiusMeters * 2,
		MinLat:        math.Max(center.Lat-latDelta, -90),
		MaxLat:        math.Min(center.Lat+latDelta, 90),
		MinLng:        center.Lng - lngDelta,
		MaxLng:        center.Lng + lngDelta,
	}
}

// Within returns pins inside a radius (meters) of a point, nearest first
func Within(pins []models.Pin, center models.Coordinate, radiusMeters float64) []models.PinWithDistance {
	results := make([]models.PinWithDistance, 0)

	for _, pin := range pins {
		dist := Distance(center, pin.Coordinate)
		if dist <= radiusMeters {
			results = append(results, models.PinWithDistance{
				Pin:            pin,
				DistanceMeters: dist,
			})
		}
	}

	// Stable so equidistant pins keep load order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	return results
}
