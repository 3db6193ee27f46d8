package camera

import (
	"fmt"
	"math"

	"github.com/thelonius/flythrough/geo"
	"github.com/thelonius/flythrough/segment"
	"github.com/thelonius/flythrough/track"
)

// staticStrategy frames the whole track from one fixed vantage point offset
// diagonally from the centroid, looking back at it.
type staticStrategy struct{}

func (staticStrategy) Name() string { return NameStatic }

const staticHeading = math.Pi / 4 // northeast of the centroid

func (staticStrategy) Plan(points []track.Point, _ []segment.Segment, s Settings) ([]Keyframe, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("static planning needs at least 2 points, got %d", len(points))
	}

	c := centroid(points)
	width, height, _ := extent(points)
	standoff := math.Max(width, height) / 2

	camPos := geo.OffsetPosition(c, staticHeading, standoff, s.FollowHeight)
	camera := geo.ToCartesian(camPos)
	o := lookAt(camera, geo.ToCartesian(c))

	return []Keyframe{{
		Time:        0,
		Position:    camera,
		Orientation: &o,
	}}, nil
}
