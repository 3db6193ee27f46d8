// Package segment classifies local windows of a track as climbs, descents,
// turns, peaks or valleys with a normalized intensity score. Segments may
// overlap; consumers that need "the" segment for a point take the first list
// match.
package segment

import (
	"math"

	"github.com/thelonius/flythrough/geo"
	"github.com/thelonius/flythrough/track"
)

// Kind labels a segment.
type Kind string

const (
	Climb    Kind = "climb"
	Descent  Kind = "descent"
	Turn     Kind = "turn"
	Straight Kind = "straight"
	Peak     Kind = "peak"
	Valley   Kind = "valley"
)

// Segment is a labeled sub-range of the track. Start and End are inclusive
// 0-based indices into the point sequence; Intensity is clamped to [0, 1].
type Segment struct {
	Kind      Kind    `json:"kind"`
	Start     int     `json:"start"`
	End       int     `json:"end"`
	Intensity float64 `json:"intensity"`
}

// Contains reports whether point index i falls within the segment.
func (s Segment) Contains(i int) bool {
	return i >= s.Start && i <= s.End
}

const (
	slopeThresholdDeg = 5.0  // below this the track counts as flat
	slopeMaxDeg       = 45.0 // slope of full intensity
	turnThresholdDeg  = 30.0 // below this the track counts as straight
	turnMaxDeg        = 90.0 // turn of full intensity
)

// Analyze classifies the track and returns a flat segment list. Slope and
// turn detection are independent passes over the interior points, so a range
// can carry both a climb and a turn segment; nothing is merged. Peaks and
// valleys are appended last, where the slope flips sign between adjacent
// windows, so first-match consumers keep seeing climb/descent/turn first.
func Analyze(points []track.Point) []Segment {
	if len(points) < 3 {
		return nil
	}

	var segs []Segment
	slopes := make([]float64, len(points)) // signed slope angle at each interior point, degrees

	for i := 1; i <= len(points)-2; i++ {
		angle := slopeAngle(points[i], points[i+1])
		slopes[i] = angle
		if math.Abs(angle) > slopeThresholdDeg {
			kind := Climb
			if angle < 0 {
				kind = Descent
			}
			segs = append(segs, Segment{
				Kind:      kind,
				Start:     i - 1,
				End:       i + 1,
				Intensity: clamp01(math.Abs(angle) / slopeMaxDeg),
			})
		}
	}

	for i := 1; i <= len(points)-2; i++ {
		angle := geo.TurnAngle(points[i-1].Position, points[i].Position, points[i+1].Position) * 180 / math.Pi
		if angle > turnThresholdDeg {
			segs = append(segs, Segment{
				Kind:      Turn,
				Start:     i - 1,
				End:       i + 1,
				Intensity: clamp01(angle / turnMaxDeg),
			})
		}
	}

	segs = append(segs, crests(slopes)...)
	return segs
}

// crests emits a peak where a qualifying climb window is immediately followed
// by a qualifying descent window, and a valley for the opposite flip. The
// intensity is the stronger of the two slopes.
func crests(slopes []float64) []Segment {
	var segs []Segment
	for i := 1; i < len(slopes)-2; i++ {
		a, b := slopes[i], slopes[i+1]
		if math.Abs(a) <= slopeThresholdDeg || math.Abs(b) <= slopeThresholdDeg {
			continue
		}
		intensity := clamp01(math.Max(math.Abs(a), math.Abs(b)) / slopeMaxDeg)
		switch {
		case a > 0 && b < 0:
			segs = append(segs, Segment{Kind: Peak, Start: i, End: i + 1, Intensity: intensity})
		case a < 0 && b > 0:
			segs = append(segs, Segment{Kind: Valley, Start: i, End: i + 1, Intensity: intensity})
		}
	}
	return segs
}

// slopeAngle returns the elevation angle between two consecutive points in
// degrees, positive uphill. A zero planar distance yields 0 or ±90 depending
// on the elevation delta, which atan2 handles.
func slopeAngle(from, to track.Point) float64 {
	dist := geo.HaversineDistance(from.Position, to.Position)
	dEle := to.Ele - from.Ele
	if dist == 0 && dEle == 0 {
		return 0
	}
	return math.Atan2(dEle, dist) * 180 / math.Pi
}

// First returns the first segment in list order that contains point index i.
// First-match-wins is deliberate: it reproduces how the cinematic strategy
// resolves overlapping climb and turn windows.
func First(segs []Segment, i int) (Segment, bool) {
	for _, s := range segs {
		if s.Contains(i) {
			return s, true
		}
	}
	return Segment{}, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
