package volume

import (
	"fmt"
	"strings"
)

type field struct {
	name  string
	value func(p *Property) any
}

// dumpFields lists every public scalar shown by String, in alphabetical order.
// Keep in sync when adding accessors.
var dumpFields = []field{
	{"ambient", func(p *Property) any { return p.Ambient() }},
	{"diffuse", func(p *Property) any { return p.Diffuse() }},
	{"independent_components", func(p *Property) any { return p.IndependentComponents() }},
	{"interpolation_type", func(p *Property) any { return p.InterpolationType() }},
	{"opacity_unit_distance", func(p *Property) any { return p.OpacityUnitDistance() }},
	{"shade", func(p *Property) any { return p.Shade() }},
	{"specular", func(p *Property) any { return p.Specular() }},
	{"specular_power", func(p *Property) any { return p.SpecularPower() }},
}

// String returns a multi-line dump of every scalar setting
func (p *Property) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Property (%p)", p)
	for _, f := range dumpFields {
		label := fieldLabel(f.name) + ":"
		value := f.value(p)
		if s, ok := value.(string); ok {
			value = fmt.Sprintf("%q", s)
		}
		fmt.Fprintf(&sb, "\n  %-28s %v", label, value)
	}
	return sb.String()
}

// fieldLabel turns "opacity_unit_distance" into "Opacity unit distance"
func fieldLabel(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}
