package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-volume-property/pkg/config"
	"github.com/df07/go-volume-property/pkg/core"
	"github.com/df07/go-volume-property/pkg/volume"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, builds a volume property and prints it to out
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("volprop", flag.ContinueOnError)
	fs.SetOutput(out)

	// Parse command line flags
	configPath := fs.String("config", "", "Volume property config file (.toml, .yaml or .yml)")
	interpolation := fs.String("interpolation", "", "Interpolation type: 'linear' or 'nearest'")
	ambient := fs.Float64("ambient", 0, "Ambient lighting coefficient")
	diffuse := fs.Float64("diffuse", 0, "Diffuse lighting coefficient")
	specular := fs.Float64("specular", 0, "Specular lighting coefficient")
	specularPower := fs.Float64("specular-power", 0, "Specular power")
	shade := fs.Bool("shade", false, "Enable volume shading")
	unitDistance := fs.Float64("opacity-unit-distance", 0, "Opacity unit distance")
	independent := fs.Bool("independent-components", true, "Treat each data component independently")
	emit := fs.String("emit", "", "Also print the resulting settings as 'toml' or 'yaml'")
	verbose := fs.Bool("verbose", false, "Log lookup table binding events")
	help := fs.Bool("help", false, "Show help information")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Show help if requested
	if *help {
		fmt.Fprintln(out, "Volume Property")
		fmt.Fprintln(out, "Usage: volprop [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Flags override values from -config. Unset flags keep the config or renderer defaults.")
		return nil
	}

	var opts []volume.Option
	if *verbose {
		opts = append(opts, volume.WithLogger(core.NewDefaultLogger()))
	}

	// Config file options first so flags win
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfgOpts, err := cfg.Options()
		if err != nil {
			return err
		}
		opts = append(opts, cfgOpts...)
	}

	// Only flags given on the command line are applied
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interpolation":
			opts = append(opts, volume.WithInterpolationType(*interpolation))
		case "ambient":
			opts = append(opts, volume.WithAmbient(*ambient))
		case "diffuse":
			opts = append(opts, volume.WithDiffuse(*diffuse))
		case "specular":
			opts = append(opts, volume.WithSpecular(*specular))
		case "specular-power":
			opts = append(opts, volume.WithSpecularPower(*specularPower))
		case "shade":
			opts = append(opts, volume.WithShade(*shade))
		case "opacity-unit-distance":
			opts = append(opts, volume.WithOpacityUnitDistance(*unitDistance))
		case "independent-components":
			opts = append(opts, volume.WithIndependentComponents(*independent))
		}
	})

	prop, err := volume.NewProperty(nil, opts...)
	if err != nil {
		return err
	}
	defer prop.Close()

	fmt.Fprintln(out, prop.String())
	if table := prop.LookupTable(); table != nil {
		lo, hi := table.ScalarRange()
		fmt.Fprintf(out, "  %-28s %d values over [%g, %g]\n", "Lookup table:", table.NValues(), lo, hi)
	}

	switch *emit {
	case "":
	case "toml", "yaml":
		format := config.TOML
		if *emit == "yaml" {
			format = config.YAML
		}
		data, err := config.Encode(config.Snapshot(prop), format)
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, string(data))
	default:
		return fmt.Errorf("unknown -emit format: %s", *emit)
	}
	return nil
}
