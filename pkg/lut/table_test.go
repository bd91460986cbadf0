package lut

import (
	"math"
	"testing"

	"github.com/df07/go-volume-property/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLookupTable_Defaults(t *testing.T) {
	table := NewLookupTable()

	assert.Equal(t, DefaultNValues, table.NValues())
	lo, hi := table.ScalarRange()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	first := table.MapValue(0)
	last := table.MapValue(1)
	assert.InDeltaSlice(t, components(core.NewVec3(0, 0, 1)), components(first.Color), 1e-9, "low end should be blue")
	assert.InDeltaSlice(t, components(core.NewVec3(1, 0, 0)), components(last.Color), 1e-9, "high end should be red")
	assert.Equal(t, 1.0, first.Alpha)
}

func TestLookupTable_MapValueClamps(t *testing.T) {
	table := NewLookupTable()
	require.NoError(t, table.SetNValues(4))
	table.SetColors(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		v        float64
		expected int
	}{
		{"below range", -1, 0},
		{"low end", 0, 0},
		{"first quarter", 0.24, 0},
		{"second quarter", 0.26, 1},
		{"high end", 1, 3},
		{"above range", 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, ok := table.TableValue(tt.expected)
			require.True(t, ok)
			assert.Equal(t, want, table.MapValue(tt.v))
		})
	}
}

func TestLookupTable_MapValueExtremes(t *testing.T) {
	table := NewLookupTable()
	low, ok := table.TableValue(0)
	require.True(t, ok)
	high, ok := table.TableValue(DefaultNValues - 1)
	require.True(t, ok)

	tests := []struct {
		name     string
		v        float64
		expected RGBA
	}{
		{"positive infinity", math.Inf(1), high},
		{"huge value", 1e300, high},
		{"max float", math.MaxFloat64, high},
		{"negative infinity", math.Inf(-1), low},
		{"huge negative value", -1e300, low},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.MapValue(tt.v))
		})
	}
}

func TestLookupTable_MapValueNaN(t *testing.T) {
	table := NewLookupTable()
	nan := RGBA{Color: core.NewVec3(1, 0, 1), Alpha: 0.5}
	table.SetNanColor(nan)
	assert.Equal(t, nan, table.MapValue(math.NaN()))
}

func TestLookupTable_ColorFunctionSamplesRange(t *testing.T) {
	table := NewLookupTable()
	require.NoError(t, table.SetNValues(3))
	require.NoError(t, table.SetScalarRange(10, 20))
	table.SetColors(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))

	cf := table.ColorFunction()
	require.Equal(t, 3, cf.Size())
	assert.Equal(t, 10.0, cf.Nodes[0].X)
	assert.Equal(t, 15.0, cf.Nodes[1].X)
	assert.Equal(t, 20.0, cf.Nodes[2].X)
	assert.InDeltaSlice(t, components(core.NewVec3(0.5, 0.5, 0.5)), components(cf.Nodes[1].RGB), 1e-12)
	assert.InDeltaSlice(t, components(core.NewVec3(1, 1, 1)), components(cf.Nodes[2].RGB), 1e-12)
}

func TestLookupTable_OpacityFunctionClips(t *testing.T) {
	table := NewLookupTable()
	require.NoError(t, table.SetNValues(3))
	require.NoError(t, table.ApplyOpacity([]float64{0, 0.5, 1}))

	pf := table.OpacityFunction()
	require.Equal(t, 3, pf.Size())
	assert.InDelta(t, 0.0, pf.Nodes[0].Value, 1e-12)
	assert.InDelta(t, 0.5, pf.Nodes[1].Value, 1e-12)
	assert.InDelta(t, MaxOpacityClip, pf.Nodes[2].Value, 1e-12)
}

func TestLookupTable_ApplyOpacityInterpolates(t *testing.T) {
	table := NewLookupTable()
	require.NoError(t, table.SetNValues(5))
	require.NoError(t, table.ApplyOpacity([]float64{0, 1}))

	for i, want := range []float64{0, 0.25, 0.5, 0.75, 1} {
		v, ok := table.TableValue(i)
		require.True(t, ok)
		assert.InDelta(t, want, v.Alpha, 1e-12, "entry %d", i)
	}
}

func TestLookupTable_InvalidArguments(t *testing.T) {
	table := NewLookupTable()

	assert.ErrorIs(t, table.SetNValues(0), ErrOutOfRange)
	assert.ErrorIs(t, table.SetScalarRange(2, 1), ErrOutOfRange)
	assert.ErrorIs(t, table.SetScalarRange(math.NaN(), 1), ErrOutOfRange)
	assert.ErrorIs(t, table.SetScalarRange(0, math.Inf(1)), ErrOutOfRange)
	assert.ErrorIs(t, table.SetScalarRange(math.Inf(-1), 0), ErrOutOfRange)
	assert.ErrorIs(t, table.ApplyOpacity(nil), ErrOutOfRange)
	assert.ErrorIs(t, table.SetTableValue(DefaultNValues, RGBA{}), ErrOutOfRange)

	// Nothing changed
	assert.Equal(t, DefaultNValues, table.NValues())
	lo, hi := table.ScalarRange()
	assert.Equal(t, [2]float64{0, 1}, [2]float64{lo, hi})
}

func TestLookupTable_SetColorsClampsStops(t *testing.T) {
	table := NewLookupTable()
	require.NoError(t, table.SetNValues(2))
	table.SetColors(core.NewVec3(-1, 0.5, 2), core.NewVec3(3, -2, 0.25))

	first, _ := table.TableValue(0)
	last, _ := table.TableValue(1)
	assert.Equal(t, core.NewVec3(0, 0.5, 1), first.Color)
	assert.Equal(t, core.NewVec3(1, 0, 0.25), last.Color)
}

func TestLookupTable_SetTableValueOverridesUntilRebuild(t *testing.T) {
	table := NewLookupTable()
	custom := RGBA{Color: core.NewVec3(0.1, 0.2, 0.3), Alpha: 0.4}
	require.NoError(t, table.SetTableValue(0, custom))
	assert.Equal(t, custom, table.MapValue(0))

	table.SetAlpha(0.7)
	assert.NotEqual(t, custom, table.MapValue(0))
	assert.Equal(t, 0.7, table.MapValue(0).Alpha)
}

// components flattens a color for assert.InDeltaSlice
func components(v core.Vec3) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
