// Package volume provides the property object a volume rendering pipeline
// reads its shading, interpolation and transfer function settings from.
//
// A Property forwards every scalar to a Renderer and keeps that renderer's
// color and opacity transfer functions in sync with a lookup table.
package volume

import (
	"fmt"
	"runtime"
	"strings"
	"weak"

	"github.com/df07/go-volume-property/pkg/core"
	"github.com/df07/go-volume-property/pkg/lut"
)

// Property exposes the settings of a Renderer and an optional binding to a
// lookup table
type Property struct {
	renderer Renderer
	binding  *binding
	logger   core.Logger
}

// NewProperty creates a property backed by r, or by a fresh State when r is
// nil. Only the options given are applied; everything else keeps the
// renderer's current value.
func NewProperty(r Renderer, opts ...Option) (*Property, error) {
	if r == nil {
		r = NewState()
	}
	cfg := options{logger: core.NewNopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := newProperty(r, cfg.logger)
	if err := cfg.apply(p); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func newProperty(r Renderer, logger core.Logger) *Property {
	p := &Property{
		renderer: r,
		binding:  &binding{},
		logger:   logger,
	}
	// Drop the table subscription if the property is collected without Close
	runtime.AddCleanup(p, func(b *binding) { b.release() }, p.binding)
	return p
}

// Renderer returns the renderer the property forwards to
func (p *Property) Renderer() Renderer {
	return p.renderer
}

// Ambient returns the ambient lighting coefficient
func (p *Property) Ambient() float64 { return p.renderer.Ambient() }

// SetAmbient sets the ambient lighting coefficient, normally in [0,1].
// It only has an effect when shading is on.
func (p *Property) SetAmbient(v float64) { p.renderer.SetAmbient(v) }

// Diffuse returns the diffuse lighting coefficient
func (p *Property) Diffuse() float64 { return p.renderer.Diffuse() }

// SetDiffuse sets the diffuse lighting coefficient, normally in [0,1]
func (p *Property) SetDiffuse(v float64) { p.renderer.SetDiffuse(v) }

// Specular returns the specular lighting coefficient
func (p *Property) Specular() float64 { return p.renderer.Specular() }

// SetSpecular sets the specular lighting coefficient, normally in [0,1]
func (p *Property) SetSpecular(v float64) { p.renderer.SetSpecular(v) }

// SpecularPower returns the specular exponent
func (p *Property) SpecularPower() float64 { return p.renderer.SpecularPower() }

// SetSpecularPower sets the specular exponent, normally in [0,128]
func (p *Property) SetSpecularPower(v float64) { p.renderer.SetSpecularPower(v) }

// Shade reports whether the mapper may perform shading
func (p *Property) Shade() bool { return p.renderer.Shade() }

// SetShade turns shading on or off. With shading off a compositing mapper
// behaves as if ambient=1, diffuse=0, specular=0.
func (p *Property) SetShade(v bool) { p.renderer.SetShade(v) }

// IndependentComponents reports whether each data component gets its own
// transfer functions
func (p *Property) IndependentComponents() bool { return p.renderer.IndependentComponents() }

// SetIndependentComponents sets the independent components flag. When off,
// data must have 2 or 4 components.
func (p *Property) SetIndependentComponents(v bool) { p.renderer.SetIndependentComponents(v) }

// OpacityUnitDistance returns the distance over which the scalar opacity
// transfer function's opacity is accumulated
func (p *Property) OpacityUnitDistance() float64 { return p.renderer.ScalarOpacityUnitDistance() }

// SetOpacityUnitDistance sets the opacity unit distance
func (p *Property) SetOpacityUnitDistance(v float64) { p.renderer.SetScalarOpacityUnitDistance(v) }

// InterpolationType returns "nearest" or "linear", read from the renderer label
func (p *Property) InterpolationType() string {
	fields := strings.Fields(p.renderer.InterpolationTypeAsString())
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// SetInterpolationType sets the interpolation mode. Only "linear" and
// "nearest" are accepted.
func (p *Property) SetInterpolationType(s string) error {
	mode, err := ParseInterpolation(s)
	if err != nil {
		return err
	}
	p.renderer.SetInterpolationType(mode)
	return nil
}

// LookupTable returns the bound table, or nil if none is bound or the bound
// table has gone away
func (p *Property) LookupTable() *lut.LookupTable {
	return p.binding.live()
}

// ApplyLookupTable pushes the color and opacity transfer functions of t into
// the renderer and keeps them updated whenever t is modified
func (p *Property) ApplyLookupTable(t *lut.LookupTable) error {
	if t == nil || t.Released() {
		return fmt.Errorf("lookup table must be a live *lut.LookupTable: %w", ErrInvalidArgument)
	}
	if p.binding.live() != t {
		p.bind(t)
	}

	// The renderer keeps snapshots, so this must run again on every change
	p.renderer.SetColor(t.ColorFunction())
	p.renderer.SetScalarOpacity(t.OpacityFunction())
	return nil
}

// ReapplyLookupTable re-applies the bound table. It does nothing when no
// table is bound or the bound table is gone.
func (p *Property) ReapplyLookupTable() {
	t := p.binding.live()
	if t == nil {
		if p.binding.bound {
			p.logger.Printf("volume property: bound lookup table is gone, nothing to reapply\n")
		}
		return
	}
	if err := p.ApplyLookupTable(t); err != nil {
		p.logger.Printf("volume property: reapplying lookup table: %v\n", err)
	}
}

// bind replaces the current binding with one to t
func (p *Property) bind(t *lut.LookupTable) {
	if p.binding.bound {
		p.logger.Printf("volume property: rebinding lookup table\n")
	} else {
		p.logger.Printf("volume property: binding lookup table\n")
	}
	p.binding.release()

	// The listener holds the property weakly so the table does not keep it alive
	self := weak.Make(p)
	sub := t.Subscribe(func() {
		if vp := self.Value(); vp != nil {
			vp.ReapplyLookupTable()
		}
	})
	p.binding.attach(t, sub)
}

// Copy returns an independent property with a deep copy of the renderer
// state. The copy is not bound to any lookup table.
func (p *Property) Copy() (*Property, error) {
	r, err := p.renderer.DeepCopy()
	if err != nil {
		return nil, err
	}
	return newProperty(r, p.logger), nil
}

// Close cancels the lookup table subscription, if the table is still
// around, and forgets the table. It never fails and may be called again.
func (p *Property) Close() {
	if p.binding.bound {
		p.logger.Printf("volume property: releasing lookup table binding\n")
	}
	p.binding.release()
}
