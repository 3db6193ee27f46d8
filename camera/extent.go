package camera

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/thelonius/flythrough/geo"
	"github.com/thelonius/flythrough/track"
)

// centroid returns the arithmetic mean of the track positions in geodetic
// coordinates. Adequate at track scale; tracks do not straddle the antimeridian.
func centroid(points []track.Point) geo.Position {
	var c geo.Position
	for _, p := range points {
		c.Lat += p.Lat
		c.Lon += p.Lon
		c.Ele += p.Ele
	}
	n := float64(len(points))
	c.Lat /= n
	c.Lon /= n
	c.Ele /= n
	return c
}

// extent returns the track bounding-box dimensions in meters: east-west
// width, north-south height, and elevation depth.
func extent(points []track.Point) (width, height, depth float64) {
	mp := make(orb.MultiPoint, len(points))
	minEle, maxEle := points[0].Ele, points[0].Ele
	for i, p := range points {
		mp[i] = orb.Point{p.Lon, p.Lat}
		minEle = math.Min(minEle, p.Ele)
		maxEle = math.Max(maxEle, p.Ele)
	}

	b := mp.Bound()
	meanLat := (b.Min.Y() + b.Max.Y()) / 2 * math.Pi / 180
	width = (b.Max.X() - b.Min.X()) * math.Pi / 180 * geo.EquatorialRadius * math.Cos(meanLat)
	height = (b.Max.Y() - b.Min.Y()) * math.Pi / 180 * geo.EquatorialRadius
	depth = maxEle - minEle
	return width, height, depth
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
