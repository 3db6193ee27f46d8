package track

import (
	"math"
	"strings"
	"testing"
	"time"
)

var ingestNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// walkRaw builds n points 10 m apart heading north, 1 s apart when timed.
func walkRaw(n int, timed bool) []RawPoint {
	raw := make([]RawPoint, n)
	for i := range raw {
		raw[i] = RawPoint{Lat: 47.0 + float64(i)*0.00009, Lon: 8.0, Ele: 500}
		if timed {
			raw[i].Time = ingestNow.Add(time.Duration(i) * time.Second).Format(time.RFC3339)
		}
	}
	return raw
}

func TestIngestTooShort(t *testing.T) {
	for _, raw := range [][]RawPoint{nil, {{Lat: 1, Lon: 1}}} {
		points, res := Ingest(raw, ingestNow)
		if res.OK() || points != nil {
			t.Fatalf("expected fatal error for %d points, got %+v", len(raw), res)
		}
		if !strings.Contains(res.Errors[0], "at least 2") {
			t.Fatalf("unexpected error: %q", res.Errors[0])
		}
	}
}

func TestIngestNonFiniteCoordinates(t *testing.T) {
	raw := walkRaw(3, true)
	raw[1].Lat = math.NaN()
	points, res := Ingest(raw, ingestNow)
	if res.OK() || points != nil {
		t.Fatal("expected fatal error for NaN latitude")
	}
	if !strings.Contains(res.Errors[0], "point 1") {
		t.Fatalf("error should name the offending index: %q", res.Errors[0])
	}
}

func TestIngestNonFiniteElevationIsWarning(t *testing.T) {
	raw := walkRaw(3, true)
	raw[2].Ele = math.Inf(1)
	points, res := Ingest(raw, ingestNow)
	if !res.OK() {
		t.Fatalf("non-finite elevation must not be fatal: %v", res.Errors)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected an elevation warning")
	}
	if points[2].Ele != 0 {
		t.Fatalf("elevation should be zeroed, got %v", points[2].Ele)
	}
}

func TestIngestBadTimestamp(t *testing.T) {
	raw := walkRaw(3, true)
	raw[1].Time = "yesterday-ish"
	_, res := Ingest(raw, ingestNow)
	if res.OK() {
		t.Fatal("expected fatal error for unparseable timestamp")
	}
	if !strings.Contains(res.Errors[0], "point 1") {
		t.Fatalf("error should name the offending index: %q", res.Errors[0])
	}
}

func TestIngestNonMonotonicTimestamps(t *testing.T) {
	raw := walkRaw(3, true)
	raw[2].Time = raw[0].Time // jumps backwards
	_, res := Ingest(raw, ingestNow)
	if res.OK() {
		t.Fatal("expected fatal error for non-increasing timestamps")
	}
	if !strings.Contains(res.Errors[0], "point 2") {
		t.Fatalf("error should name the offending index: %q", res.Errors[0])
	}
}

func TestIngestSynthesizesTimestamps(t *testing.T) {
	// counts that do and do not divide the 1h span into whole nanoseconds
	for _, n := range []int{5, 7, 8, 11, 13} {
		raw := walkRaw(n, false)
		points, res := Ingest(raw, ingestNow)
		if !res.OK() {
			t.Fatalf("n=%d: unexpected errors: %v", n, res.Errors)
		}
		if !points[0].Time.Equal(ingestNow) {
			t.Fatalf("n=%d: first synthetic timestamp = %v, want %v", n, points[0].Time, ingestNow)
		}
		if d := Duration(points); d != time.Hour {
			t.Fatalf("n=%d: synthetic track duration = %v, want exactly 1h", n, d)
		}
		for i := 1; i < len(points); i++ {
			if !points[i].Time.After(points[i-1].Time) {
				t.Fatalf("n=%d: synthetic timestamps not increasing at %d", n, i)
			}
		}
	}
}

func TestIngestMixedTimestampsWarnsAndInterpolates(t *testing.T) {
	raw := walkRaw(3, true)
	raw[1].Time = ""
	points, res := Ingest(raw, ingestNow)
	if !res.OK() {
		t.Fatalf("mixed timestamps must not be fatal: %v", res.Errors)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "mixed timestamps") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected mixed-timestamps warning, got %v", res.Warnings)
	}
	if points[1].Time.Before(points[0].Time) || points[1].Time.After(points[2].Time) {
		t.Fatalf("interpolated timestamp %v outside neighbors", points[1].Time)
	}
}

func TestIngestDuplicateWarning(t *testing.T) {
	raw := walkRaw(12, true)
	for i := 1; i < len(raw); i++ {
		raw[i].Lat = raw[0].Lat // all points on top of each other
		raw[i].Lon = raw[0].Lon
	}
	_, res := Ingest(raw, ingestNow)
	if !res.OK() {
		t.Fatalf("duplicates must not be fatal: %v", res.Errors)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "near-duplicate") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected near-duplicate warning, got %v", res.Warnings)
	}
}

func TestIngestGapWarning(t *testing.T) {
	raw := walkRaw(3, true)
	raw[2].Time = ingestNow.Add(3 * time.Hour).Format(time.RFC3339)
	_, res := Ingest(raw, ingestNow)
	if !res.OK() {
		t.Fatalf("time gap must not be fatal: %v", res.Errors)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "time gap") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected time-gap warning, got %v", res.Warnings)
	}
}

func TestIngestDoesNotMutateInput(t *testing.T) {
	raw := walkRaw(3, false)
	Ingest(raw, ingestNow)
	for i, rp := range raw {
		if rp.Time != "" {
			t.Fatalf("input slice mutated at %d: %q", i, rp.Time)
		}
	}
}

func TestTotalDistance(t *testing.T) {
	points, res := Ingest(walkRaw(3, true), ingestNow)
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	// 2 legs of ~10 m each
	if d := TotalDistance(points); d < 15 || d > 25 {
		t.Fatalf("total distance = %v, want ~20 m", d)
	}
}
