package geo

import "math"

// Cartesian is a point or vector in the renderer's world frame: a
// fixed-center frame with the Z axis through the poles and the X axis through
// the 0°/0° intersection, in meters.
type Cartesian struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ToCartesian converts a geodetic position to world coordinates on a sphere
// of EquatorialRadius plus elevation. The surface normal at the result is the
// normalized position vector, which is what the look-at solver relies on.
func ToCartesian(p Position) Cartesian {
	latRad := p.Lat * math.Pi / 180
	lonRad := p.Lon * math.Pi / 180
	r := EquatorialRadius + p.Ele
	return Cartesian{
		X: r * math.Cos(latRad) * math.Cos(lonRad),
		Y: r * math.Cos(latRad) * math.Sin(lonRad),
		Z: r * math.Sin(latRad),
	}
}

// Position converts world coordinates back to geodetic, the inverse of
// ToCartesian. The zero vector maps to the zero position.
func (c Cartesian) Position() Position {
	r := c.Norm()
	if r == 0 {
		return Position{}
	}
	return Position{
		Lat: math.Asin(c.Z/r) * 180 / math.Pi,
		Lon: math.Atan2(c.Y, c.X) * 180 / math.Pi,
		Ele: r - EquatorialRadius,
	}
}

func (c Cartesian) Sub(o Cartesian) Cartesian {
	return Cartesian{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

func (c Cartesian) Scale(s float64) Cartesian {
	return Cartesian{c.X * s, c.Y * s, c.Z * s}
}

func (c Cartesian) Dot(o Cartesian) float64 {
	return c.X*o.X + c.Y*o.Y + c.Z*o.Z
}

func (c Cartesian) Cross(o Cartesian) Cartesian {
	return Cartesian{
		X: c.Y*o.Z - c.Z*o.Y,
		Y: c.Z*o.X - c.X*o.Z,
		Z: c.X*o.Y - c.Y*o.X,
	}
}

func (c Cartesian) Norm() float64 {
	return math.Sqrt(c.Dot(c))
}

// Normalize returns the unit vector in the direction of c. The zero vector
// normalizes to itself.
func (c Cartesian) Normalize() Cartesian {
	n := c.Norm()
	if n == 0 {
		return c
	}
	return c.Scale(1 / n)
}
