package camera

import (
	"math"

	"github.com/thelonius/flythrough/geo"
)

// lookAt derives the camera orientation that points from camera at target.
// It is the single source of truth for turning a position pair into an
// orientation; every strategy that needs one goes through here.
//
// The local frame is built from the camera's surface normal: up is the
// normalized camera position vector, east and north follow from it. Heading
// is atan2(d·east, d·north), pitch is asin(d·up) − π/2, roll is always 0.
// Coincident camera and target yield heading 0, pitch −π/2.
func lookAt(camera, target geo.Cartesian) Orientation {
	dir := target.Sub(camera).Normalize()
	if dir == (geo.Cartesian{}) {
		return Orientation{Pitch: -math.Pi / 2}
	}

	up := camera.Normalize()
	east := geo.Cartesian{Z: 1}.Cross(up).Normalize()
	if east == (geo.Cartesian{}) {
		// camera on the polar axis; any horizontal axis works
		east = geo.Cartesian{Y: 1}
	}
	north := up.Cross(east)

	vert := dir.Dot(up)
	if vert > 1 {
		vert = 1
	} else if vert < -1 {
		vert = -1
	}

	return Orientation{
		Heading: math.Atan2(dir.Dot(east), dir.Dot(north)),
		Pitch:   math.Asin(vert) - math.Pi/2,
		Roll:    0,
	}
}
