package volume

import (
	"github.com/df07/go-volume-property/pkg/core"
	"github.com/df07/go-volume-property/pkg/lut"
)

// Option configures a Property at construction
type Option func(*options)

type options struct {
	lookupTable           *lut.LookupTable
	interpolationType     *string
	ambient               *float64
	diffuse               *float64
	specular              *float64
	specularPower         *float64
	shade                 *bool
	opacityUnitDistance   *float64
	independentComponents *bool
	logger                core.Logger
}

// WithLookupTable applies a lookup table, see Property.ApplyLookupTable
func WithLookupTable(t *lut.LookupTable) Option {
	return func(o *options) { o.lookupTable = t }
}

// WithInterpolationType sets "linear" or "nearest" interpolation
func WithInterpolationType(s string) Option {
	return func(o *options) { o.interpolationType = &s }
}

// WithAmbient sets the ambient lighting coefficient
func WithAmbient(v float64) Option {
	return func(o *options) { o.ambient = &v }
}

// WithDiffuse sets the diffuse lighting coefficient
func WithDiffuse(v float64) Option {
	return func(o *options) { o.diffuse = &v }
}

// WithSpecular sets the specular lighting coefficient
func WithSpecular(v float64) Option {
	return func(o *options) { o.specular = &v }
}

// WithSpecularPower sets the specular exponent
func WithSpecularPower(v float64) Option {
	return func(o *options) { o.specularPower = &v }
}

// WithShade turns shading on or off
func WithShade(v bool) Option {
	return func(o *options) { o.shade = &v }
}

// WithOpacityUnitDistance sets the opacity unit distance
func WithOpacityUnitDistance(v float64) Option {
	return func(o *options) { o.opacityUnitDistance = &v }
}

// WithIndependentComponents sets the independent components flag
func WithIndependentComponents(v bool) Option {
	return func(o *options) { o.independentComponents = &v }
}

// WithLogger sets the logger for binding events
func WithLogger(l core.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// apply writes the given options to p in a fixed order, lookup table first
func (o *options) apply(p *Property) error {
	if o.lookupTable != nil {
		if err := p.ApplyLookupTable(o.lookupTable); err != nil {
			return err
		}
	}
	if o.interpolationType != nil {
		if err := p.SetInterpolationType(*o.interpolationType); err != nil {
			return err
		}
	}
	if o.ambient != nil {
		p.SetAmbient(*o.ambient)
	}
	if o.diffuse != nil {
		p.SetDiffuse(*o.diffuse)
	}
	if o.specular != nil {
		p.SetSpecular(*o.specular)
	}
	if o.specularPower != nil {
		p.SetSpecularPower(*o.specularPower)
	}
	if o.shade != nil {
		p.SetShade(*o.shade)
	}
	if o.opacityUnitDistance != nil {
		p.SetOpacityUnitDistance(*o.opacityUnitDistance)
	}
	if o.independentComponents != nil {
		p.SetIndependentComponents(*o.independentComponents)
	}
	return nil
}
