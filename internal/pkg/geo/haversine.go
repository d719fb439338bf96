package geo

import (
	"math"

	"herbmart/internal/entities"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points using
// the haversine formula.
func DistanceKm(a, b entities.GeoPoint) float64 {
	latA := a.Latitude * math.Pi / 180
	latB := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func ValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}
