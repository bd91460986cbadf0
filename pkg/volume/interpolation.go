package volume

import (
	"fmt"
	"strings"
)

// Interpolation is the sampling mode used when reading voxels
type Interpolation int32

const (
	// Nearest samples the closest voxel
	Nearest Interpolation = iota
	// Linear trilinearly interpolates between neighboring voxels
	Linear
)

// String returns the short lower-case name: "nearest" or "linear"
func (i Interpolation) String() string {
	switch i {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("Interpolation(%d)", int32(i))
}

// Label returns the human-readable renderer name of the mode
func (i Interpolation) Label() string {
	switch i {
	case Nearest:
		return "Nearest Neighbor"
	case Linear:
		return "Linear"
	}
	return "Unknown"
}

// ParseInterpolation accepts exactly "nearest" or "linear"
func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "nearest":
		return Nearest, nil
	case "linear":
		return Linear, nil
	}
	return Nearest, fmt.Errorf("interpolation type must be either \"linear\" or \"nearest\", got %q: %w", s, ErrInvalidArgument)
}

// InterpolationFromLabel recovers the mode from a renderer label such as
// "Nearest Neighbor", matching the first word case-insensitively
func InterpolationFromLabel(label string) (Interpolation, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return Nearest, fmt.Errorf("empty interpolation label: %w", ErrInvalidArgument)
	}
	return ParseInterpolation(strings.ToLower(fields[0]))
}

// MarshalText implements encoding.TextMarshaler
func (i Interpolation) MarshalText() ([]byte, error) {
	if i != Nearest && i != Linear {
		return nil, fmt.Errorf("cannot marshal %v: %w", i, ErrInvalidArgument)
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Interpolation) UnmarshalText(text []byte) error {
	v, err := ParseInterpolation(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
