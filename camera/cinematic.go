package camera

import (
	"math"

	"github.com/thelonius/flythrough/segment"
	"github.com/thelonius/flythrough/track"
)

// cinematicStrategy is the follow geometry with segment-aware shaping: the
// camera pulls back and climbs on climbs, moves in and drops on descents, and
// swings wide through turns. The first segment in list order that covers a
// point decides its adjustment.
type cinematicStrategy struct{}

func (cinematicStrategy) Name() string { return NameCinematic }

const pitchShiftPerIntensity = 10 * math.Pi / 180

func (cinematicStrategy) Plan(points []track.Point, segs []segment.Segment, s Settings) ([]Keyframe, error) {
	return planFollow(points, s, func(i int) adjustment {
		active, ok := segment.First(segs, i)
		if !ok {
			return noAdjustment
		}
		switch active.Kind {
		case segment.Climb:
			return adjustment{
				distance:   1.3,
				height:     1.2,
				pitchDelta: -pitchShiftPerIntensity * active.Intensity,
			}
		case segment.Descent:
			return adjustment{
				distance:   0.8,
				height:     0.9,
				pitchDelta: pitchShiftPerIntensity * active.Intensity,
			}
		case segment.Turn:
			return adjustment{distance: 1.2, height: 1.1}
		}
		return noAdjustment
	})
}
