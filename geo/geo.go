// Package geo provides the geodetic math used by track analysis and camera
// planning: bearings, spherical-earth offsets, great-circle distances and
// turn angles. All functions are pure; angles are radians unless noted.
package geo

import "math"

// Two distinct earth radii are used on purpose. The offset walk and the
// segmentation math use the equatorial radius, the haversine distance the
// mean radius. Unifying them would change numeric output.
const (
	EquatorialRadius = 6378137.0 // meters
	MeanRadius       = 6371000.0 // meters
)

// Position is a geodetic coordinate: latitude/longitude in degrees,
// elevation in meters above the reference sphere.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Ele float64 `json:"ele"`
}

// Heading returns the bearing from one position to the next using a planar
// approximation of the longitude/latitude deltas. Adequate at track-segment
// scale; not geodesic-correct over long arcs. Coincident positions return 0
// by convention.
func Heading(from, to Position) float64 {
	midLat := (from.Lat + to.Lat) / 2 * math.Pi / 180
	dNorth := (to.Lat - from.Lat) * math.Pi / 180
	dEast := (to.Lon - from.Lon) * math.Pi / 180 * math.Cos(midLat)
	if dNorth == 0 && dEast == 0 {
		return 0
	}
	return math.Atan2(dEast, dNorth)
}

// OffsetPosition walks distance meters along heading from origin on a sphere
// of EquatorialRadius and adds heightDelta to the elevation. A zero-distance,
// zero-height offset is the identity.
func OffsetPosition(origin Position, heading, distance, heightDelta float64) Position {
	latRad := origin.Lat * math.Pi / 180
	dLat := distance * math.Cos(heading) / EquatorialRadius
	dLon := 0.0
	if cosLat := math.Cos(latRad); cosLat != 0 {
		dLon = distance * math.Sin(heading) / (EquatorialRadius * cosLat)
	}
	return Position{
		Lat: origin.Lat + dLat*180/math.Pi,
		Lon: origin.Lon + dLon*180/math.Pi,
		Ele: origin.Ele + heightDelta,
	}
}

// HaversineDistance returns the great-circle surface distance in meters
// between two positions, on a sphere of MeanRadius. Elevation is ignored.
func HaversineDistance(p1, p2 Position) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	dLat := (p2.Lat - p1.Lat) * math.Pi / 180
	dLon := (p2.Lon - p1.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return MeanRadius * c
}

// TurnAngle returns the angle at curr between the incoming and outgoing
// direction vectors, in radians within [0, π]. The dot product is clamped to
// [-1, 1] before arccos so floating-point drift cannot leave the domain.
// If either leg is degenerate (coincident points) the angle is 0.
func TurnAngle(prev, curr, next Position) float64 {
	midLat := curr.Lat * math.Pi / 180
	cosLat := math.Cos(midLat)

	v1e := (curr.Lon - prev.Lon) * cosLat
	v1n := curr.Lat - prev.Lat
	v2e := (next.Lon - curr.Lon) * cosLat
	v2n := next.Lat - curr.Lat

	n1 := math.Hypot(v1e, v1n)
	n2 := math.Hypot(v2e, v2n)
	if n1 == 0 || n2 == 0 {
		return 0
	}

	dot := (v1e*v2e + v1n*v2n) / (n1 * n2)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}

// AngleBetweenHeadings returns the smallest absolute angle between two
// headings, normalized to [0, π].
func AngleBetweenHeadings(a, b float64) float64 {
	diff := math.Mod(b-a+math.Pi, 2*math.Pi) - math.Pi
	return math.Abs(diff)
}
