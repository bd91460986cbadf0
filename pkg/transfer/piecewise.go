package transfer

import "slices"

// PiecewiseNode is a single control point of a PiecewiseFunction
type PiecewiseNode struct {
	X     float64 // Scalar value
	Value float64 // Function value at X
}

// PiecewiseFunction maps scalar values to a scalar (typically opacity) by
// linear interpolation between control points
type PiecewiseFunction struct {
	Nodes []PiecewiseNode // Sorted by X, no duplicate X
}

// NewPiecewiseFunction creates an empty piecewise function
func NewPiecewiseFunction() *PiecewiseFunction {
	return &PiecewiseFunction{}
}

// AddPoint adds a control point, replacing any existing point at x
func (pf *PiecewiseFunction) AddPoint(x, value float64) {
	node := PiecewiseNode{X: x, Value: value}
	i, found := slices.BinarySearchFunc(pf.Nodes, x, func(n PiecewiseNode, x float64) int {
		return cmpFloat(n.X, x)
	})
	if found {
		pf.Nodes[i] = node
		return
	}
	pf.Nodes = slices.Insert(pf.Nodes, i, node)
}

// Size returns the number of control points
func (pf *PiecewiseFunction) Size() int {
	return len(pf.Nodes)
}

// Value returns the function value at x, clamped to the end points
func (pf *PiecewiseFunction) Value(x float64) float64 {
	n := len(pf.Nodes)
	if n == 0 {
		return 0
	}
	if x <= pf.Nodes[0].X {
		return pf.Nodes[0].Value
	}
	if x >= pf.Nodes[n-1].X {
		return pf.Nodes[n-1].Value
	}

	i, _ := slices.BinarySearchFunc(pf.Nodes, x, func(node PiecewiseNode, x float64) int {
		if node.X <= x {
			return -1
		}
		return 1
	})
	lo, hi := pf.Nodes[i-1], pf.Nodes[i]
	t := (x - lo.X) / (hi.X - lo.X)
	return lo.Value + (hi.Value-lo.Value)*t
}

// Clone returns an independent copy
func (pf *PiecewiseFunction) Clone() *PiecewiseFunction {
	return &PiecewiseFunction{Nodes: slices.Clone(pf.Nodes)}
}

// Equal reports whether both functions have identical control points
func (pf *PiecewiseFunction) Equal(other *PiecewiseFunction) bool {
	if pf == nil || other == nil {
		return pf == other
	}
	return slices.Equal(pf.Nodes, other.Nodes)
}
