package cli

import (
	"fmt"
	"os"

	"github.com/jasal82/cconfig/pkg/config"
)

// ConvertOptions holds configuration for the convert command
type ConvertOptions struct {
	InputFile  string `validate:"required"`
	OutputFile string
	FromYAML   bool
	Verbose    bool
}

// ConvertRun converts between configuration syntax and YAML. The default
// direction reads configuration syntax and emits YAML; FromYAML reverses it.
func ConvertRun(opts ConvertOptions) {
	if err := checkOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	var out []byte
	var err error
	if opts.FromYAML {
		out, err = convertFromYAML(opts.InputFile)
	} else {
		out, err = convertToYAML(opts.InputFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if opts.OutputFile == "" {
		os.Stdout.Write(out)
		return
	}

	if err := os.WriteFile(opts.OutputFile, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error writing %s: %v\n", opts.OutputFile, err)
		os.Exit(1)
	}

	fmt.Printf("🎉 Successfully converted %s to %s\n", opts.InputFile, opts.OutputFile)
}

func convertToYAML(path string) ([]byte, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration %s: %w", path, err)
	}
	out, err := config.ToYAML(f.Root())
	if err != nil {
		return nil, fmt.Errorf("error rendering YAML: %w", err)
	}
	return out, nil
}

func convertFromYAML(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	e, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing YAML %s: %w", path, err)
	}
	root, err := config.AsGroup(e)
	if err != nil {
		return nil, fmt.Errorf("top-level YAML value must be a mapping: %w", err)
	}
	return []byte(config.Render(root)), nil
}
