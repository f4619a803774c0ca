package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"toll-route-service/internal/domain"
)

const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two points.
func DistanceMeters(a, b domain.Coordinates) float64 {
	p := s2.LatLngFromDegrees(a.Lat, a.Lon)
	q := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p.Distance(q).Radians() * earthRadiusMeters
}

// Offset returns the point reached by travelling distanceMeters from origin
// along the given compass bearing (degrees, 0 = north, clockwise).
func Offset(origin domain.Coordinates, bearingDeg, distanceMeters float64) domain.Coordinates {
	lat1 := origin.Lat * math.Pi / 180
	lon1 := origin.Lon * math.Pi / 180
	brng := bearingDeg * math.Pi / 180
	d := distanceMeters / earthRadiusMeters

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(
		math.Sin(brng)*math.Sin(d)*math.Cos(lat1),
		math.Cos(d)-math.Sin(lat1)*math.Sin(lat2),
	)

	// Normalize longitude to [-180, 180).
	lonDeg := math.Mod(lon2*180/math.Pi+540, 360) - 180

	return domain.Coordinates{
		Lat: lat2 * 180 / math.Pi,
		Lon: lonDeg,
	}
}

// CompassBearings returns n evenly spaced bearings starting at north.
func CompassBearings(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := 360.0 / float64(n)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}
