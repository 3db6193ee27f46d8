package track

import (
	"fmt"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// LoadGPX parses a GPX file into a raw point sequence, flattening all tracks
// and segments in file order. Points without an elevation inherit the nearest
// known value: leading gaps take the first known elevation, later gaps carry
// the previous one forward.
func LoadGPX(path string) ([]RawPoint, error) {
	gpxFile, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPX file: %w", err)
	}

	var points []RawPoint
	var hasEle []bool
	for _, trk := range gpxFile.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				rp := RawPoint{Lat: p.Latitude, Lon: p.Longitude}
				if p.Elevation.NotNull() {
					rp.Ele = p.Elevation.Value()
				}
				if !p.Timestamp.IsZero() {
					rp.Time = p.Timestamp.Format(time.RFC3339Nano)
				}
				points = append(points, rp)
				hasEle = append(hasEle, p.Elevation.NotNull())
			}
		}
	}

	backfillElevations(points, hasEle)
	return points, nil
}

func backfillElevations(points []RawPoint, hasEle []bool) {
	firstKnown := -1
	for i, ok := range hasEle {
		if ok {
			firstKnown = i
			break
		}
	}
	if firstKnown == -1 {
		return
	}

	for i := 0; i < firstKnown; i++ {
		points[i].Ele = points[firstKnown].Ele
	}
	last := points[firstKnown].Ele
	for i := firstKnown; i < len(points); i++ {
		if hasEle[i] {
			last = points[i].Ele
		} else {
			points[i].Ele = last
		}
	}
}
