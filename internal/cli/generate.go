package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jasal82/cconfig/internal/gen"
	"github.com/jasal82/cconfig/internal/git"
	"github.com/jasal82/cconfig/pkg/schema"
)

// GenerateOptions holds configuration for the generate command
type GenerateOptions struct {
	SchemaFile string `validate:"required"`
	OutputFile string `validate:"required"`
	Package    string `validate:"required,go_package"`
	NoStamp    bool
	Verbose    bool
}

// GenerateRun generates a typed wrapper source file from a schema.
func GenerateRun(opts GenerateOptions) {
	if err := checkOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if opts.Verbose {
		fmt.Printf("Schema file: %s\n", opts.SchemaFile)
		fmt.Printf("Output file: %s\n", opts.OutputFile)
		fmt.Printf("Package: %s\n", opts.Package)
	}

	s, err := schema.Load(opts.SchemaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading schema %s: %v\n", opts.SchemaFile, err)
		os.Exit(1)
	}

	revision := schemaRevision(opts)

	src, err := gen.GenerateWrapper(s, gen.Options{
		Package:    opts.Package,
		SchemaFile: filepath.Base(opts.SchemaFile),
		Revision:   revision,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error generating wrapper: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(opts.OutputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error writing %s: %v\n", opts.OutputFile, err)
		os.Exit(1)
	}

	fmt.Printf("🎉 Successfully generated wrapper %s\n", opts.OutputFile)
}

// schemaRevision derives the revision stamp for the generated header. A
// schema outside any repository simply produces no stamp.
func schemaRevision(opts GenerateOptions) string {
	if opts.NoStamp {
		return ""
	}

	info, err := git.Describe(filepath.Dir(opts.SchemaFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Warning: could not determine schema revision: %v\n", err)
		return ""
	}
	if info == nil {
		if opts.Verbose {
			fmt.Println("Schema is not under version control, skipping revision stamp")
		}
		return ""
	}
	return info.Revision()
}
