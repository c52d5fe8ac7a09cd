package cli

import (
	"fmt"
	"os"

	"github.com/jasal82/cconfig/pkg/config"
	"github.com/jasal82/cconfig/pkg/schema"
)

// ValidateOptions holds configuration for the validate command
type ValidateOptions struct {
	SchemaFile string `validate:"required"`
	ConfigFile string `validate:"required"`
	Strict     bool
	Verbose    bool
}

// ValidateRun validates a configuration file against a schema.
func ValidateRun(opts ValidateOptions) {
	if err := checkOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("🔍 Validating %s against %s...\n", opts.ConfigFile, opts.SchemaFile)

	s, err := schema.Load(opts.SchemaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading schema %s: %v\n", opts.SchemaFile, err)
		os.Exit(1)
	}

	f, err := config.Load(opts.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading configuration %s: %v\n", opts.ConfigFile, err)
		os.Exit(1)
	}

	result := runValidation(s, f, opts.Strict)

	if result.Valid {
		if opts.Strict {
			fmt.Printf("✅ %s is valid (strict)\n", opts.ConfigFile)
		} else {
			fmt.Printf("✅ %s is valid\n", opts.ConfigFile)
		}
		return
	}

	fmt.Printf("❌ Validation failed at %s: %s\n", result.URI, result.Message)
	os.Exit(1)
}

// runValidation converts schema-definition defects, which surface as
// panics during validation, into a command failure instead of a crash.
func runValidation(s *schema.Schema, f *config.File, strict bool) schema.Result {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "❌ Schema error: %v\n", r)
			os.Exit(1)
		}
	}()
	return s.Validate(f, strict)
}
