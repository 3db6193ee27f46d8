// Package track ingests raw geographic samples into a canonical,
// monotonically-timed point sequence and validates it for downstream
// planning. Fatal findings abort planning; advisory findings are returned for
// the caller to log or display.
package track

import (
	"time"

	"github.com/thelonius/flythrough/geo"
)

// RawPoint is one sample as delivered by an external format parser.
// Time is an ISO-8601 string, or empty when the source carried no timestamp.
type RawPoint struct {
	Lat  float64
	Lon  float64
	Ele  float64
	Time string
}

// Point is one canonical track sample. Created by Ingest and read-only
// afterwards; Time is always set (synthesized when the source had none).
type Point struct {
	geo.Position
	Time time.Time `json:"time"`
}

// Result collects the findings of one validation run. Errors are fatal and
// ordered; Warnings are advisory and never block planning.
type Result struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the sequence passed validation with no fatal errors.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// TotalDistance returns the summed great-circle distance over the sequence,
// in meters.
func TotalDistance(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += geo.HaversineDistance(points[i-1].Position, points[i].Position)
	}
	return total
}

// Duration returns the elapsed time between the first and last point.
func Duration(points []Point) time.Duration {
	if len(points) < 2 {
		return 0
	}
	return points[len(points)-1].Time.Sub(points[0].Time)
}

// Elapsed returns the seconds between the first point and point i.
func Elapsed(points []Point, i int) float64 {
	return points[i].Time.Sub(points[0].Time).Seconds()
}
