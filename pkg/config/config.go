// Package config loads volume property settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-volume-property/pkg/core"
	"github.com/df07/go-volume-property/pkg/lut"
	"github.com/df07/go-volume-property/pkg/volume"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding
type Format int

const (
	TOML Format = iota
	YAML
)

// ErrUnknownFormat is returned for files whose extension is not recognized
var ErrUnknownFormat = errors.New("unknown config format")

// Config is the file form of a volume property. Nil fields are left at the
// renderer's defaults.
type Config struct {
	Volume      VolumeConfig `toml:"volume" yaml:"volume"`
	LookupTable *TableConfig `toml:"lookup_table,omitempty" yaml:"lookup_table,omitempty"`
}

// VolumeConfig holds the scalar settings
type VolumeConfig struct {
	InterpolationType     *volume.Interpolation `toml:"interpolation_type,omitempty" yaml:"interpolation_type,omitempty"`
	Ambient               *float64              `toml:"ambient,omitempty" yaml:"ambient,omitempty"`
	Diffuse               *float64              `toml:"diffuse,omitempty" yaml:"diffuse,omitempty"`
	Specular              *float64              `toml:"specular,omitempty" yaml:"specular,omitempty"`
	SpecularPower         *float64              `toml:"specular_power,omitempty" yaml:"specular_power,omitempty"`
	Shade                 *bool                 `toml:"shade,omitempty" yaml:"shade,omitempty"`
	OpacityUnitDistance   *float64              `toml:"opacity_unit_distance,omitempty" yaml:"opacity_unit_distance,omitempty"`
	IndependentComponents *bool                 `toml:"independent_components,omitempty" yaml:"independent_components,omitempty"`
}

// TableConfig describes a lookup table
type TableConfig struct {
	NValues     int          `toml:"n_values,omitempty" yaml:"n_values,omitempty"`
	ScalarRange []float64    `toml:"scalar_range,omitempty" yaml:"scalar_range,omitempty"` // [min, max]
	Colors      [][3]float64 `toml:"colors,omitempty" yaml:"colors,omitempty"`             // RGB stops
	Opacity     []float64    `toml:"opacity,omitempty" yaml:"opacity,omitempty"`           // Opacity stops
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Load reads and decodes a config file
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses config data in the given format
func Decode(data []byte, format Format) (*Config, error) {
	cfg := &Config{}
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to the zero config
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	return cfg, nil
}

// Encode writes the config in the given format
func Encode(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case TOML:
		return toml.Marshal(cfg)
	case YAML:
		return yaml.Marshal(cfg)
	}
	return nil, ErrUnknownFormat
}

// Snapshot captures the current scalar settings of p. The lookup table is
// not captured.
func Snapshot(p *volume.Property) *Config {
	mode, err := volume.ParseInterpolation(p.InterpolationType())
	var modePtr *volume.Interpolation
	if err == nil {
		modePtr = &mode
	}
	return &Config{
		Volume: VolumeConfig{
			InterpolationType:     modePtr,
			Ambient:               ptr(p.Ambient()),
			Diffuse:               ptr(p.Diffuse()),
			Specular:              ptr(p.Specular()),
			SpecularPower:         ptr(p.SpecularPower()),
			Shade:                 ptr(p.Shade()),
			OpacityUnitDistance:   ptr(p.OpacityUnitDistance()),
			IndependentComponents: ptr(p.IndependentComponents()),
		},
	}
}

// Options converts the config into property options. The lookup table, if
// configured, is built fresh.
func (c *Config) Options() ([]volume.Option, error) {
	var opts []volume.Option
	if c.LookupTable != nil {
		table, err := c.LookupTable.Build()
		if err != nil {
			return nil, err
		}
		opts = append(opts, volume.WithLookupTable(table))
	}

	v := c.Volume
	if v.InterpolationType != nil {
		opts = append(opts, volume.WithInterpolationType(v.InterpolationType.String()))
	}
	if v.Ambient != nil {
		opts = append(opts, volume.WithAmbient(*v.Ambient))
	}
	if v.Diffuse != nil {
		opts = append(opts, volume.WithDiffuse(*v.Diffuse))
	}
	if v.Specular != nil {
		opts = append(opts, volume.WithSpecular(*v.Specular))
	}
	if v.SpecularPower != nil {
		opts = append(opts, volume.WithSpecularPower(*v.SpecularPower))
	}
	if v.Shade != nil {
		opts = append(opts, volume.WithShade(*v.Shade))
	}
	if v.OpacityUnitDistance != nil {
		opts = append(opts, volume.WithOpacityUnitDistance(*v.OpacityUnitDistance))
	}
	if v.IndependentComponents != nil {
		opts = append(opts, volume.WithIndependentComponents(*v.IndependentComponents))
	}
	return opts, nil
}

// Build creates the lookup table described by tc
func (tc *TableConfig) Build() (*lut.LookupTable, error) {
	table := lut.NewLookupTable()
	if tc.NValues != 0 {
		if err := table.SetNValues(tc.NValues); err != nil {
			return nil, err
		}
	}
	if len(tc.ScalarRange) != 0 {
		if len(tc.ScalarRange) != 2 {
			return nil, fmt.Errorf("scalar_range needs exactly two values, got %d: %w", len(tc.ScalarRange), lut.ErrOutOfRange)
		}
		if err := table.SetScalarRange(tc.ScalarRange[0], tc.ScalarRange[1]); err != nil {
			return nil, err
		}
	}
	if len(tc.Colors) != 0 {
		colors := make([]core.Vec3, len(tc.Colors))
		for i, c := range tc.Colors {
			colors[i] = core.NewVec3(c[0], c[1], c[2])
		}
		table.SetColors(colors...)
	}
	if len(tc.Opacity) != 0 {
		if err := table.ApplyOpacity(tc.Opacity); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func ptr[T any](v T) *T {
	return &v
}
