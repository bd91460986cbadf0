package transfer

import (
	"testing"

	"github.com/df07/go-volume-property/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFunction_AddRGBPointKeepsOrder(t *testing.T) {
	cf := NewColorFunction()
	cf.AddRGBPoint(1.0, 1, 0, 0)
	cf.AddRGBPoint(0.0, 0, 0, 1)
	cf.AddRGBPoint(0.5, 0, 1, 0)

	require.Equal(t, 3, cf.Size())
	assert.Equal(t, []float64{0, 0.5, 1}, []float64{cf.Nodes[0].X, cf.Nodes[1].X, cf.Nodes[2].X})

	lo, hi := cf.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestColorFunction_AddRGBPointReplaces(t *testing.T) {
	cf := NewColorFunction()
	cf.AddRGBPoint(0.5, 0, 1, 0)
	cf.AddRGBPoint(0.5, 1, 1, 1)

	require.Equal(t, 1, cf.Size())
	assert.Equal(t, core.NewVec3(1, 1, 1), cf.Nodes[0].RGB)
}

func TestColorFunction_Value(t *testing.T) {
	cf := NewColorFunction()
	cf.AddRGBPoint(0, 0, 0, 1)
	cf.AddRGBPoint(10, 1, 0, 0)

	tests := []struct {
		name     string
		x        float64
		expected core.Vec3
	}{
		{"below range", -5, core.NewVec3(0, 0, 1)},
		{"first node", 0, core.NewVec3(0, 0, 1)},
		{"midpoint", 5, core.NewVec3(0.5, 0, 0.5)},
		{"last node", 10, core.NewVec3(1, 0, 0)},
		{"above range", 20, core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cf.Value(tt.x)
			assert.InDeltaSlice(t, components(tt.expected), components(got), 1e-12)
		})
	}
}

func TestColorFunction_EmptyValue(t *testing.T) {
	assert.Equal(t, core.Vec3{}, NewColorFunction().Value(3))
}

func TestColorFunction_CloneIsIndependent(t *testing.T) {
	cf := NewColorFunction()
	cf.AddRGBPoint(0, 0, 0, 0)
	clone := cf.Clone()
	require.True(t, cf.Equal(clone))

	clone.AddRGBPoint(1, 1, 1, 1)
	assert.False(t, cf.Equal(clone))
	assert.Equal(t, 1, cf.Size())
}

func TestPiecewiseFunction_Value(t *testing.T) {
	pf := NewPiecewiseFunction()
	pf.AddPoint(0, 0)
	pf.AddPoint(1, 1)
	pf.AddPoint(2, 0.5)

	assert.InDelta(t, 0.0, pf.Value(-1), 1e-12)
	assert.InDelta(t, 0.5, pf.Value(0.5), 1e-12)
	assert.InDelta(t, 1.0, pf.Value(1), 1e-12)
	assert.InDelta(t, 0.75, pf.Value(1.5), 1e-12)
	assert.InDelta(t, 0.5, pf.Value(3), 1e-12)
}

func TestPiecewiseFunction_Equal(t *testing.T) {
	a := NewPiecewiseFunction()
	a.AddPoint(0, 0.2)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.AddPoint(0, 0.3)
	assert.False(t, a.Equal(b))

	var nilFn *PiecewiseFunction
	assert.True(t, nilFn.Equal(nil))
	assert.False(t, a.Equal(nil))
}

// components flattens a color for assert.InDeltaSlice
func components(v core.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
