// Package transfer holds the transfer functions a volume renderer samples:
// a scalar-to-color function and a scalar-to-opacity piecewise function.
package transfer

import (
	"slices"

	"github.com/df07/go-volume-property/pkg/core"
)

// ColorNode is a single control point of a ColorFunction
type ColorNode struct {
	X   float64   // Scalar value
	RGB core.Vec3 // Color at X, components in [0,1]
}

// ColorFunction maps scalar values to RGB colors by linear interpolation
// between control points
type ColorFunction struct {
	Nodes []ColorNode // Sorted by X, no duplicate X
}

// NewColorFunction creates an empty color transfer function
func NewColorFunction() *ColorFunction {
	return &ColorFunction{}
}

// AddRGBPoint adds a control point, replacing any existing point at x
func (cf *ColorFunction) AddRGBPoint(x, r, g, b float64) {
	node := ColorNode{X: x, RGB: core.NewVec3(r, g, b)}
	i, found := slices.BinarySearchFunc(cf.Nodes, x, func(n ColorNode, x float64) int {
		return cmpFloat(n.X, x)
	})
	if found {
		cf.Nodes[i] = node
		return
	}
	cf.Nodes = slices.Insert(cf.Nodes, i, node)
}

// Size returns the number of control points
func (cf *ColorFunction) Size() int {
	return len(cf.Nodes)
}

// Range returns the lowest and highest scalar values with a control point
func (cf *ColorFunction) Range() (float64, float64) {
	if len(cf.Nodes) == 0 {
		return 0, 0
	}
	return cf.Nodes[0].X, cf.Nodes[len(cf.Nodes)-1].X
}

// Value returns the color at x, clamped to the end points outside the range
func (cf *ColorFunction) Value(x float64) core.Vec3 {
	n := len(cf.Nodes)
	if n == 0 {
		return core.Vec3{}
	}
	if x <= cf.Nodes[0].X {
		return cf.Nodes[0].RGB
	}
	if x >= cf.Nodes[n-1].X {
		return cf.Nodes[n-1].RGB
	}

	// First node strictly greater than x
	i, _ := slices.BinarySearchFunc(cf.Nodes, x, func(node ColorNode, x float64) int {
		if node.X <= x {
			return -1
		}
		return 1
	})
	lo, hi := cf.Nodes[i-1], cf.Nodes[i]
	t := (x - lo.X) / (hi.X - lo.X)
	return lo.RGB.Lerp(hi.RGB, t)
}

// Clone returns an independent copy
func (cf *ColorFunction) Clone() *ColorFunction {
	return &ColorFunction{Nodes: slices.Clone(cf.Nodes)}
}

// Equal reports whether both functions have identical control points
func (cf *ColorFunction) Equal(other *ColorFunction) bool {
	if cf == nil || other == nil {
		return cf == other
	}
	return slices.Equal(cf.Nodes, other.Nodes)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
