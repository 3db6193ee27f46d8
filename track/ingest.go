package track

import (
	"fmt"
	"math"
	"time"

	"github.com/thelonius/flythrough/geo"
)

const (
	// defaultDuration is the synthetic track length used when no point
	// carries a timestamp. Playback speed is controlled by the rate
	// controller and strategy settings, not by this spacing.
	defaultDuration = 3600 * time.Second

	minAvgSpacing     = 0.5     // meters; tighter is suspiciously dense
	maxAvgSpacing     = 20000.0 // meters; wider is suspiciously sparse
	maxTrackDuration  = 7 * 24 * time.Hour
	maxTimeGap        = 3600 * time.Second
	duplicateDistance = 0.1 // meters between consecutive points
	maxPointCount     = 5000
)

// timeLayouts are tried in order when parsing point timestamps. GPX exporters
// disagree on fractional seconds and zone suffixes.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// Ingest converts a raw sample sequence into canonical points and validates
// it. Fatal rules are evaluated in order and ingestion returns on the first
// fatal finding with no points. When no sample carries a timestamp, evenly
// spaced timestamps are synthesized starting at now and spanning
// defaultDuration. The input slice is never mutated.
func Ingest(raw []RawPoint, now time.Time) ([]Point, Result) {
	var res Result

	if len(raw) < 2 {
		res.Errors = append(res.Errors, "need at least 2 points")
		return nil, res
	}

	points := make([]Point, len(raw))
	for i, rp := range raw {
		if !isFinite(rp.Lat) || !isFinite(rp.Lon) {
			res.Errors = append(res.Errors, fmt.Sprintf("point %d: non-finite coordinates", i))
			return nil, res
		}
		ele := rp.Ele
		if !isFinite(ele) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("point %d: non-finite elevation, treating as 0", i))
			ele = 0
		}
		points[i].Position = geo.Position{Lat: rp.Lat, Lon: rp.Lon, Ele: ele}
	}

	timed := 0
	for _, rp := range raw {
		if rp.Time != "" {
			timed++
		}
	}

	switch {
	case timed == 0:
		synthesizeTimestamps(points, now)
	default:
		if timed < len(raw) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("mixed timestamps: %d of %d points are untimed", len(raw)-timed, len(raw)))
		}
		if err := applyTimestamps(points, raw, &res); err != nil {
			return nil, res
		}
	}

	checkAdvisories(points, &res)
	return points, res
}

// applyTimestamps parses and checks the source timestamps. Every non-empty
// timestamp must parse and the timed subsequence must be strictly increasing;
// untimed points (mixed input, already warned about) are interpolated between
// their timed neighbors.
func applyTimestamps(points []Point, raw []RawPoint, res *Result) error {
	lastTimed := -1
	for i, rp := range raw {
		if rp.Time == "" {
			continue
		}
		t, err := parseTime(rp.Time)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("point %d: %v", i, err))
			return err
		}
		if lastTimed >= 0 && !t.After(points[lastTimed].Time) {
			err := fmt.Errorf("point %d: timestamp not increasing", i)
			res.Errors = append(res.Errors, err.Error())
			return err
		}
		points[i].Time = t
		lastTimed = i
	}

	fillUntimed(points)
	return nil
}

// fillUntimed linearly interpolates timestamps for points between two timed
// neighbors and clamps leading/trailing runs to the nearest timed value.
func fillUntimed(points []Point) {
	prev := -1
	for i := range points {
		if points[i].Time.IsZero() {
			continue
		}
		switch {
		case prev == -1:
			for j := 0; j < i; j++ {
				points[j].Time = points[i].Time
			}
		case i-prev > 1:
			span := points[i].Time.Sub(points[prev].Time)
			for j := prev + 1; j < i; j++ {
				frac := float64(j-prev) / float64(i-prev)
				points[j].Time = points[prev].Time.Add(time.Duration(frac * float64(span)))
			}
		}
		prev = i
	}
	if prev >= 0 {
		for j := prev + 1; j < len(points); j++ {
			points[j].Time = points[prev].Time
		}
	}
}

// synthesizeTimestamps spreads the points evenly over defaultDuration
// starting at now. Each stamp is a fraction of the total span rather than a
// multiple of a truncated per-step duration, so the last point lands exactly
// at now + defaultDuration for any point count. This is the one mutation
// ingestion performs beyond canonicalization.
func synthesizeTimestamps(points []Point, now time.Time) {
	last := float64(len(points) - 1)
	for i := range points {
		frac := float64(i) / last
		points[i].Time = now.Add(time.Duration(frac * float64(defaultDuration)))
	}
}

// checkAdvisories runs the never-fatal sanity checks over the canonical
// sequence and appends warnings to res.
func checkAdvisories(points []Point, res *Result) {
	n := len(points)

	avg := TotalDistance(points) / float64(n-1)
	if avg < minAvgSpacing {
		res.Warnings = append(res.Warnings, fmt.Sprintf("very dense track: average spacing %.2f m", avg))
	} else if avg > maxAvgSpacing {
		res.Warnings = append(res.Warnings, fmt.Sprintf("very sparse track: average spacing %.0f m", avg))
	}

	if d := Duration(points); d > maxTrackDuration {
		res.Warnings = append(res.Warnings, fmt.Sprintf("track spans %s, longer than %s", d, maxTrackDuration))
	}

	for i := 1; i < n; i++ {
		if gap := points[i].Time.Sub(points[i-1].Time); gap > maxTimeGap {
			res.Warnings = append(res.Warnings, fmt.Sprintf("point %d: time gap of %s exceeds %s", i, gap, maxTimeGap))
			break
		}
	}

	dupes := 0
	for i := 1; i < n; i++ {
		if geo.HaversineDistance(points[i-1].Position, points[i].Position) < duplicateDistance {
			dupes++
		}
	}
	if limit := max(3, n/20); dupes > limit {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%d near-duplicate consecutive points (limit %d)", dupes, limit))
	}

	if n > maxPointCount {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%d points exceeds recommended maximum of %d", n, maxPointCount))
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
