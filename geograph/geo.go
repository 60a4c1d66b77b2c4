package geograph

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// EarthRadiusMiles is the sphere radius used for all distances in this package.
const EarthRadiusMiles = 3963.0

const pi180 = math.Pi / 180.0

// DistanceMiles returns the haversine great-circle distance between a and b.
func DistanceMiles(a, b orb.Point) float64 {
	phi1 := a.Lat() * pi180
	phi2 := b.Lat() * pi180
	dphi := (b.Lat() - a.Lat()) * pi180
	dlambda := (b.Lon() - a.Lon()) * pi180

	sdphi := math.Sin(dphi / 2.0)
	sdlambda := math.Sin(dlambda / 2.0)

	h := sdphi*sdphi + math.Cos(phi1)*math.Cos(phi2)*sdlambda*sdlambda
	// rounding can push h slightly outside [0, 1] for antipodal points
	h = math.Min(math.Max(h, 0), 1)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMiles * c
}

// InitialBearing returns the compass heading in degrees at a of the great
// circle from a to b, in (-180, 180].
func InitialBearing(a, b orb.Point) float64 {
	bearing := geo.Bearing(a, b)
	if bearing <= -180 {
		bearing += 360
	}
	return bearing
}
