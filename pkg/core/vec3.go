package core

import "math"

// Vec3 represents a 3-component vector, used here for RGB colors
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// Lerp linearly interpolates from v to other by t (t=0 gives v, t=1 gives other)
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return v.Add(other.Subtract(v).Multiply(t))
}

// HSVToRGB converts a hue/saturation/value triple (all in [0,1]) to RGB
func HSVToRGB(h, s, v float64) Vec3 {
	if s <= 0 {
		return Vec3{v, v, v}
	}
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	h6 := h * 6
	sector := math.Floor(h6)
	f := h6 - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(sector) % 6 {
	case 0:
		return Vec3{v, t, p}
	case 1:
		return Vec3{q, v, p}
	case 2:
		return Vec3{p, v, t}
	case 3:
		return Vec3{p, q, v}
	case 4:
		return Vec3{t, p, v}
	default:
		return Vec3{v, p, q}
	}
}
