package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world units
// Y is up; the playable plane is XZ
type Vec3F struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// V3F builds a vector from components
func V3F(x, y, z float64) Vec3F {
	return Vec3F{X: x, Y: y, Z: z}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns the unit vector of v, zero vector stays zero
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDist returns euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FPlanarDist returns distance on the XZ plane, ignoring height
func V3FPlanarDist(a, b Vec3F) float64 {
	dx, dz := a.X-b.X, a.Z-b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// V3FDirection returns the unit vector pointing from one point to another
func V3FDirection(from, to Vec3F) Vec3F {
	return V3FNormalize(V3FSub(to, from))
}

// V3FPlanarDirection is V3FDirection with the Y component dropped before normalizing
func V3FPlanarDirection(from, to Vec3F) Vec3F {
	return V3FNormalize(Vec3F{to.X - from.X, 0, to.Z - from.Z})
}

// V3FLerp moves a toward b by factor t (0 = a, 1 = b)
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FApproxEqual compares component-wise within eps
func V3FApproxEqual(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
