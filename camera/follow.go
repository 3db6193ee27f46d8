package camera

import (
	"fmt"
	"math"

	"github.com/thelonius/flythrough/geo"
	"github.com/thelonius/flythrough/segment"
	"github.com/thelonius/flythrough/track"
)

// followStrategy keeps the camera behind and above the moving entity,
// looking ahead along the direction of travel. One keyframe per track point.
type followStrategy struct{}

func (followStrategy) Name() string { return NameFollow }

func (followStrategy) Plan(points []track.Point, _ []segment.Segment, s Settings) ([]Keyframe, error) {
	return planFollow(points, s, nil)
}

// adjustment scales the follow geometry per point. pitchDelta is added to the
// solved pitch, in radians.
type adjustment struct {
	distance   float64
	height     float64
	pitchDelta float64
}

var noAdjustment = adjustment{distance: 1, height: 1}

// planFollow is the shared follow-geometry planner. adjust, when non-nil,
// supplies per-point multipliers (the cinematic strategy's segment shaping);
// nil means the plain follow behavior.
func planFollow(points []track.Point, s Settings, adjust func(i int) adjustment) ([]Keyframe, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("follow planning needs at least 2 points, got %d", len(points))
	}

	headings := travelHeadings(points, s.Smoothing)

	frames := make([]Keyframe, 0, len(points))
	for i, p := range points {
		adj := noAdjustment
		if adjust != nil {
			adj = adjust(i)
		}

		heading := headings[i]
		if !s.EnableRotation {
			heading = headings[0]
		}

		camPos := geo.OffsetPosition(p.Position, heading+math.Pi, s.FollowDistance*adj.distance, s.FollowHeight*adj.height)
		target := geo.OffsetPosition(p.Position, heading, s.LookAheadDistance, 0)

		camera := geo.ToCartesian(camPos)
		o := lookAt(camera, geo.ToCartesian(target))
		if s.EnableTilt {
			o.Pitch += adj.pitchDelta
		}

		frames = append(frames, Keyframe{
			Time:        track.Elapsed(points, i),
			Position:    camera,
			Orientation: &o,
		})
	}
	return frames, nil
}

// travelHeadings returns the direction of travel at every point. The final
// index clamps to the last leg. A smoothing factor above zero low-passes the
// sequence so jittery fixes do not whip the camera around; the blend follows
// the shortest angular path.
func travelHeadings(points []track.Point, smoothing float64) []float64 {
	headings := make([]float64, len(points))
	for i := 0; i < len(points)-1; i++ {
		headings[i] = geo.Heading(points[i].Position, points[i+1].Position)
	}
	headings[len(points)-1] = headings[len(points)-2]

	if smoothing <= 0 {
		return headings
	}
	for i := 1; i < len(headings); i++ {
		diff := math.Mod(headings[i]-headings[i-1]+3*math.Pi, 2*math.Pi) - math.Pi
		headings[i] = headings[i-1] + (1-smoothing)*diff
	}
	return headings
}
