package game

import "math"

// Vec is a 2D vector in normalized arena space (diameter = 1),
// origin at the arena center.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// NormalizeDeg maps any degree value into [0, 360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// SignedDeg maps any degree value into (-180, 180].
func SignedDeg(a float64) float64 {
	a = NormalizeDeg(a)
	if a > 180 {
		a -= 360
	}
	return a
}

// SignedDeltaDeg returns the smallest signed difference a-b in degrees,
// magnitude <= 180. Safe across the 0/360 seam.
func SignedDeltaDeg(a, b float64) float64 {
	return SignedDeg(a - b)
}

// Reflect mirrors v about the tangent at a contact point with unit
// outward normal n: v - 2(v·n)n. Preserves |v|.
func Reflect(v, n Vec) Vec {
	d := 2 * v.Dot(n)
	return Vec{v.X - d*n.X, v.Y - d*n.Y}
}

// Rotate rotates v by theta radians counterclockwise. Preserves |v|.
func Rotate(v Vec, theta float64) Vec {
	sin, cos := math.Sincos(theta)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func DegToRad(d float64) float64 { return d * math.Pi / 180 }

func RadToDeg(r float64) float64 { return r * 180 / math.Pi }
