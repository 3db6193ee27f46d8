package camera

import (
	"fmt"
	"math"

	"github.com/thelonius/flythrough/geo"
	"github.com/thelonius/flythrough/segment"
	"github.com/thelonius/flythrough/track"
)

// birdsEyeStrategy places a single fixed camera straight above the track
// centroid, high enough to frame the whole extent.
type birdsEyeStrategy struct{}

func (birdsEyeStrategy) Name() string { return NameBirdsEye }

// extentHeightFactor scales the larger bounding-box dimension into a camera
// height that keeps the full track in a typical field of view.
const extentHeightFactor = 0.8

func (birdsEyeStrategy) Plan(points []track.Point, _ []segment.Segment, s Settings) ([]Keyframe, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("birdseye planning needs at least 2 points, got %d", len(points))
	}

	c := centroid(points)
	width, height, _ := extent(points)
	camHeight := clamp(extentHeightFactor*math.Max(width, height), s.MinHeight, s.MaxHeight)

	pos := geo.Position{Lat: c.Lat, Lon: c.Lon, Ele: c.Ele + camHeight}
	return []Keyframe{{
		Time:        0,
		Position:    geo.ToCartesian(pos),
		Orientation: &Orientation{Heading: 0, Pitch: -math.Pi / 2, Roll: 0},
	}}, nil
}
