package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Lerp(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
		t        float64
		expected Vec3
	}{
		{"start", NewVec3(0, 0, 1), NewVec3(1, 0, 0), 0, NewVec3(0, 0, 1)},
		{"end", NewVec3(0, 0, 1), NewVec3(1, 0, 0), 1, NewVec3(1, 0, 0)},
		{"midpoint", NewVec3(0, 0, 1), NewVec3(1, 0, 0), 0.5, NewVec3(0.5, 0, 0.5)},
		{"quarter", NewVec3(0, 0, 0), NewVec3(1, 1, 1), 0.25, NewVec3(0.25, 0.25, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.from.Lerp(tt.to, tt.t)
			assert.InDeltaSlice(t, components(tt.expected), components(result), 1e-12)
		})
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	assert.Equal(t, NewVec3(0, 0.5, 1), v)
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name     string
		h, s, v  float64
		expected Vec3
	}{
		{"red", 0, 1, 1, NewVec3(1, 0, 0)},
		{"green", 1.0 / 3.0, 1, 1, NewVec3(0, 1, 0)},
		{"blue", 2.0 / 3.0, 1, 1, NewVec3(0, 0, 1)},
		{"grey without saturation", 0.4, 0, 0.5, NewVec3(0.5, 0.5, 0.5)},
		{"hue wraps", 1, 1, 1, NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HSVToRGB(tt.h, tt.s, tt.v)
			assert.InDeltaSlice(t, components(tt.expected), components(result), 1e-9)
		})
	}
}

// components flattens a vector for assert.InDeltaSlice
func components(v Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
