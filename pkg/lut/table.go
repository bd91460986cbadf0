// Package lut provides a color/opacity lookup table that can derive
// transfer functions from its mapping and notifies observers when that
// mapping changes.
package lut

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/df07/go-volume-property/pkg/core"
	"github.com/df07/go-volume-property/pkg/transfer"
)

const (
	// DefaultNValues is the number of table entries of a new table
	DefaultNValues = 256

	// MaxOpacityClip is the highest opacity written into a derived opacity
	// transfer function; a fully opaque sample would hide everything behind it
	MaxOpacityClip = 0.998

	// default ramp runs from blue (hue 2/3) at the low end to red (hue 0)
	defaultHueStart = 2.0 / 3.0
)

// ErrOutOfRange is returned by mutators given an index or range they cannot use
var ErrOutOfRange = errors.New("lut: value out of range")

// RGBA is a single table entry, all components in [0,1]
type RGBA struct {
	Color core.Vec3
	Alpha float64
}

// SubscriptionID identifies an observer registered with Subscribe.
// The zero value is never handed out.
type SubscriptionID uint64

type observer struct {
	id SubscriptionID
	fn func()
}

// LookupTable maps scalar values to colors and opacities over a scalar range
type LookupTable struct {
	nValues              int
	scalarMin, scalarMax float64
	colorStops           []core.Vec3 // Evenly spaced over the table, nil uses the hue ramp
	opacityStops         []float64   // Evenly spaced over the table, nil is fully opaque
	nanColor             RGBA
	values               []RGBA
	released             bool

	mu        sync.Mutex
	nextID    SubscriptionID
	observers []observer
}

// NewLookupTable creates a table with DefaultNValues entries over [0, 1]
func NewLookupTable() *LookupTable {
	t := &LookupTable{
		nValues:   DefaultNValues,
		scalarMin: 0,
		scalarMax: 1,
		nanColor:  RGBA{Color: core.NewVec3(0.5, 0, 0), Alpha: 1},
	}
	t.build()
	return t
}

// NValues returns the number of table entries
func (t *LookupTable) NValues() int {
	return t.nValues
}

// SetNValues resizes the table and rebuilds it from the color and opacity stops
func (t *LookupTable) SetNValues(n int) error {
	if n < 1 {
		return fmt.Errorf("n_values must be at least 1, got %d: %w", n, ErrOutOfRange)
	}
	t.nValues = n
	t.build()
	t.Modified()
	return nil
}

// ScalarRange returns the scalar range the table is mapped across
func (t *LookupTable) ScalarRange() (float64, float64) {
	return t.scalarMin, t.scalarMax
}

// SetScalarRange sets the scalar range the table is mapped across
func (t *LookupTable) SetScalarRange(lo, hi float64) error {
	if lo > hi || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("invalid scalar range [%g, %g]: %w", lo, hi, ErrOutOfRange)
	}
	t.scalarMin, t.scalarMax = lo, hi
	t.Modified()
	return nil
}

// SetColors replaces the color ramp with evenly spaced color stops, each
// clamped to [0,1]. Passing no colors restores the default hue ramp.
func (t *LookupTable) SetColors(colors ...core.Vec3) {
	if len(colors) == 0 {
		t.colorStops = nil
	} else {
		t.colorStops = make([]core.Vec3, len(colors))
		for i, c := range colors {
			t.colorStops[i] = c.Clamp(0, 1)
		}
	}
	t.build()
	t.Modified()
}

// ApplyOpacity sets the opacity of the table from evenly spaced stops,
// interpolated across all entries. Values are clamped to [0,1].
func (t *LookupTable) ApplyOpacity(opacity []float64) error {
	if len(opacity) == 0 {
		return fmt.Errorf("opacity needs at least one value: %w", ErrOutOfRange)
	}
	stops := make([]float64, len(opacity))
	for i, a := range opacity {
		stops[i] = max(0, min(1, a))
	}
	t.opacityStops = stops
	t.build()
	t.Modified()
	return nil
}

// SetAlpha sets a constant opacity for every entry
func (t *LookupTable) SetAlpha(alpha float64) {
	t.opacityStops = []float64{max(0, min(1, alpha))}
	t.build()
	t.Modified()
}

// SetNanColor sets the entry returned by MapValue for NaN inputs
func (t *LookupTable) SetNanColor(c RGBA) {
	t.nanColor = c
	t.Modified()
}

// SetTableValue overwrites a single entry. The edit lasts until the table
// is next rebuilt by SetNValues, SetColors, ApplyOpacity or SetAlpha.
func (t *LookupTable) SetTableValue(i int, c RGBA) error {
	if i < 0 || i >= len(t.values) {
		return fmt.Errorf("table index %d not in [0, %d): %w", i, len(t.values), ErrOutOfRange)
	}
	t.values[i] = c
	t.Modified()
	return nil
}

// TableValue returns a single entry
func (t *LookupTable) TableValue(i int) (RGBA, bool) {
	if i < 0 || i >= len(t.values) {
		return RGBA{}, false
	}
	return t.values[i], true
}

// MapValue returns the table entry for scalar value v
func (t *LookupTable) MapValue(v float64) RGBA {
	if math.IsNaN(v) {
		return t.nanColor
	}
	n := len(t.values)
	span := t.scalarMax - t.scalarMin
	if span <= 0 {
		if v > t.scalarMax {
			return t.values[n-1]
		}
		return t.values[0]
	}

	// Clamp before converting so huge or infinite inputs cannot overflow int
	f := math.Floor((v - t.scalarMin) * float64(n) / span)
	if f >= float64(n-1) {
		return t.values[n-1]
	}
	if f <= 0 {
		return t.values[0]
	}
	return t.values[int(f)]
}

// ColorFunction derives a color transfer function with one point per entry,
// evenly spaced across the scalar range
func (t *LookupTable) ColorFunction() *transfer.ColorFunction {
	cf := transfer.NewColorFunction()
	for _, x := range t.samplePoints() {
		c := t.MapValue(x).Color
		cf.AddRGBPoint(x, c.X, c.Y, c.Z)
	}
	return cf
}

// OpacityFunction derives an opacity transfer function with one point per
// entry, with opacities clamped to [0, MaxOpacityClip]
func (t *LookupTable) OpacityFunction() *transfer.PiecewiseFunction {
	pf := transfer.NewPiecewiseFunction()
	for _, x := range t.samplePoints() {
		alpha := max(0, min(MaxOpacityClip, t.MapValue(x).Alpha))
		pf.AddPoint(x, alpha)
	}
	return pf
}

// samplePoints returns nValues points from scalarMin to scalarMax inclusive
func (t *LookupTable) samplePoints() []float64 {
	n := t.nValues
	points := make([]float64, n)
	if n == 1 {
		points[0] = t.scalarMin
		return points
	}
	step := (t.scalarMax - t.scalarMin) / float64(n-1)
	for i := range points {
		points[i] = t.scalarMin + float64(i)*step
	}
	points[n-1] = t.scalarMax
	return points
}

// build regenerates every entry from the stops
func (t *LookupTable) build() {
	t.values = make([]RGBA, t.nValues)
	for i := range t.values {
		pos := 0.0
		if t.nValues > 1 {
			pos = float64(i) / float64(t.nValues-1)
		}
		t.values[i] = RGBA{Color: t.colorAt(pos), Alpha: t.opacityAt(pos)}
	}
}

func (t *LookupTable) colorAt(pos float64) core.Vec3 {
	if len(t.colorStops) == 0 {
		return core.HSVToRGB(defaultHueStart*(1-pos), 1, 1)
	}
	lo, hi, frac := stopSpan(len(t.colorStops), pos)
	return t.colorStops[lo].Lerp(t.colorStops[hi], frac)
}

func (t *LookupTable) opacityAt(pos float64) float64 {
	if len(t.opacityStops) == 0 {
		return 1
	}
	lo, hi, frac := stopSpan(len(t.opacityStops), pos)
	return t.opacityStops[lo] + (t.opacityStops[hi]-t.opacityStops[lo])*frac
}

// stopSpan locates pos in [0,1] between two of n evenly spaced stops
func stopSpan(n int, pos float64) (int, int, float64) {
	if n == 1 {
		return 0, 0, 0
	}
	scaled := pos * float64(n-1)
	lo := int(math.Floor(scaled))
	if lo >= n-1 {
		return n - 1, n - 1, 0
	}
	return lo, lo + 1, scaled - float64(lo)
}
