// Package camera turns a validated track into an ordered camera keyframe
// timeline. Four strategies are available, selected by name; all of them
// share the same look-at solver and offset math so orientations cannot drift
// between variants. The external renderer owns playback and interpolation
// between keyframes.
package camera

import (
	"fmt"

	"github.com/thelonius/flythrough/geo"
	"github.com/thelonius/flythrough/segment"
	"github.com/thelonius/flythrough/track"
)

// Orientation is a camera attitude in radians.
type Orientation struct {
	Heading float64 `json:"heading"`
	Pitch   float64 `json:"pitch"`
	Roll    float64 `json:"roll"`
}

// Keyframe is one camera pose on the timeline. Time is seconds since the
// first track point; Position is in the renderer's world frame.
type Keyframe struct {
	Time        float64       `json:"time"`
	Position    geo.Cartesian `json:"position"`
	Orientation *Orientation  `json:"orientation,omitempty"`
}

// Strategy generates a keyframe timeline from a track. Implementations are a
// closed set; use ForName to obtain one.
type Strategy interface {
	Name() string
	Plan(points []track.Point, segs []segment.Segment, s Settings) ([]Keyframe, error)
}

// Strategy names.
const (
	NameFollow    = "follow"
	NameCinematic = "cinematic"
	NameBirdsEye  = "birdseye"
	NameStatic    = "static"
)

// ForName returns the strategy registered under name.
func ForName(name string) (Strategy, error) {
	switch name {
	case NameFollow:
		return followStrategy{}, nil
	case NameCinematic:
		return cinematicStrategy{}, nil
	case NameBirdsEye:
		return birdsEyeStrategy{}, nil
	case NameStatic:
		return staticStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown camera strategy %q", name)
}

// Names lists the available strategy names in a stable order.
func Names() []string {
	return []string{NameFollow, NameCinematic, NameBirdsEye, NameStatic}
}
