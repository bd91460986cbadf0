package volume

import (
	"fmt"

	"github.com/df07/go-volume-property/pkg/transfer"
	"github.com/jinzhu/copier"
)

// Settings is the raw renderer-side state of a volume property
type Settings struct {
	Ambient                   float64
	Diffuse                   float64
	Specular                  float64
	SpecularPower             float64
	Shade                     bool
	IndependentComponents     bool
	ScalarOpacityUnitDistance float64
	Interpolation             Interpolation
	Color                     *transfer.ColorFunction
	ScalarOpacity             *transfer.PiecewiseFunction
}

// DefaultSettings returns the values a fresh renderer starts with
func DefaultSettings() Settings {
	return Settings{
		Ambient:                   0.1,
		Diffuse:                   0.7,
		Specular:                  0.2,
		SpecularPower:             10.0,
		Shade:                     false,
		IndependentComponents:     true,
		ScalarOpacityUnitDistance: 1.0,
		Interpolation:             Nearest,
	}
}

// State is an in-memory Renderer. It accepts every value as given, with no
// range checks on the lighting coefficients.
type State struct {
	settings Settings
}

// NewState creates a renderer state holding DefaultSettings
func NewState() *State {
	return &State{settings: DefaultSettings()}
}

// NewStateFrom creates a renderer state holding the given settings
func NewStateFrom(s Settings) *State {
	return &State{settings: s}
}

// Settings returns a copy of the scalar state. Transfer functions are shared.
func (s *State) Settings() Settings { return s.settings }

func (s *State) Ambient() float64       { return s.settings.Ambient }
func (s *State) SetAmbient(v float64)   { s.settings.Ambient = v }
func (s *State) Diffuse() float64       { return s.settings.Diffuse }
func (s *State) SetDiffuse(v float64)   { s.settings.Diffuse = v }
func (s *State) Specular() float64      { return s.settings.Specular }
func (s *State) SetSpecular(v float64)  { s.settings.Specular = v }
func (s *State) SpecularPower() float64 { return s.settings.SpecularPower }

func (s *State) SetSpecularPower(v float64) { s.settings.SpecularPower = v }

func (s *State) Shade() bool     { return s.settings.Shade }
func (s *State) SetShade(v bool) { s.settings.Shade = v }

func (s *State) IndependentComponents() bool     { return s.settings.IndependentComponents }
func (s *State) SetIndependentComponents(v bool) { s.settings.IndependentComponents = v }

func (s *State) ScalarOpacityUnitDistance() float64 { return s.settings.ScalarOpacityUnitDistance }

func (s *State) SetScalarOpacityUnitDistance(v float64) {
	s.settings.ScalarOpacityUnitDistance = v
}

func (s *State) InterpolationType() Interpolation     { return s.settings.Interpolation }
func (s *State) SetInterpolationType(v Interpolation) { s.settings.Interpolation = v }

// InterpolationTypeAsString returns the renderer label of the current mode
func (s *State) InterpolationTypeAsString() string {
	return s.settings.Interpolation.Label()
}

// SetColor stores a private copy so later edits to cf do not leak in
func (s *State) SetColor(cf *transfer.ColorFunction) {
	if cf == nil {
		s.settings.Color = nil
		return
	}
	s.settings.Color = cf.Clone()
}

func (s *State) Color() *transfer.ColorFunction { return s.settings.Color }

// SetScalarOpacity stores a private copy so later edits to pf do not leak in
func (s *State) SetScalarOpacity(pf *transfer.PiecewiseFunction) {
	if pf == nil {
		s.settings.ScalarOpacity = nil
		return
	}
	s.settings.ScalarOpacity = pf.Clone()
}

func (s *State) ScalarOpacity() *transfer.PiecewiseFunction { return s.settings.ScalarOpacity }

// DeepCopy duplicates every field, including the transfer functions
func (s *State) DeepCopy() (Renderer, error) {
	dup := &State{}
	err := copier.CopyWithOption(&dup.settings, &s.settings, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		return nil, fmt.Errorf("copying renderer state: %w", err)
	}
	return dup, nil
}
