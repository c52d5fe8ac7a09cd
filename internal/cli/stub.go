package cli

import (
	"fmt"
	"os"

	"github.com/jasal82/cconfig/internal/gen"
	"github.com/jasal82/cconfig/pkg/schema"
)

// StubOptions holds configuration for the stub command
type StubOptions struct {
	SchemaFile string `validate:"required"`
	OutputFile string
	Verbose    bool
}

// StubRun generates a configuration skeleton from a schema. Without an
// output file the stub goes to stdout.
func StubRun(opts StubOptions) {
	if err := checkOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	s, err := schema.Load(opts.SchemaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading schema %s: %v\n", opts.SchemaFile, err)
		os.Exit(1)
	}

	stub := gen.GenerateStub(s)

	if opts.OutputFile == "" {
		fmt.Print(stub)
		return
	}

	if err := os.WriteFile(opts.OutputFile, []byte(stub), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error writing %s: %v\n", opts.OutputFile, err)
		os.Exit(1)
	}

	fmt.Printf("🎉 Successfully generated stub %s\n", opts.OutputFile)
}
