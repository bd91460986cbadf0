package volume

import "github.com/df07/go-volume-property/pkg/transfer"

// Renderer is the rendering-engine side of a volume property. Property
// forwards every read and write to it and keeps no copy of its own.
type Renderer interface {
	Ambient() float64
	SetAmbient(v float64)
	Diffuse() float64
	SetDiffuse(v float64)
	Specular() float64
	SetSpecular(v float64)
	SpecularPower() float64
	SetSpecularPower(v float64)

	Shade() bool
	SetShade(v bool)
	IndependentComponents() bool
	SetIndependentComponents(v bool)
	ScalarOpacityUnitDistance() float64
	SetScalarOpacityUnitDistance(v float64)

	InterpolationType() Interpolation
	SetInterpolationType(v Interpolation)
	// InterpolationTypeAsString returns the human-readable mode, e.g. "Nearest Neighbor"
	InterpolationTypeAsString() string

	// SetColor stores a snapshot of the color transfer function
	SetColor(cf *transfer.ColorFunction)
	Color() *transfer.ColorFunction
	// SetScalarOpacity stores a snapshot of the opacity transfer function
	SetScalarOpacity(pf *transfer.PiecewiseFunction)
	ScalarOpacity() *transfer.PiecewiseFunction

	// DeepCopy returns an independent renderer with all state duplicated
	DeepCopy() (Renderer, error)
}
