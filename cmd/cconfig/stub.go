package main

import (
	"github.com/jasal82/cconfig/internal/cli"
	"github.com/spf13/cobra"
)

var (
	// Command-specific flags for stub
	stubOutputFile string
)

var stubCmd = &cobra.Command{
	Use:   "stub [schema-file]",
	Short: "Generate a configuration skeleton from a schema",
	Long: `Generate a configuration skeleton with zero-valued settings from a schema.

The skeleton contains every setting the schema declares, ready to be filled
in. Without --output the skeleton is printed to stdout.

Examples:
  cconfig stub app.schema
  cconfig stub app.schema -o app.cfg`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.StubOptions{
			SchemaFile: args[0],
			OutputFile: stubOutputFile,
			Verbose:    verbose,
		}

		cli.StubRun(opts)
	},
}

func init() {
	// Stub command specific flags
	stubCmd.Flags().StringVarP(&stubOutputFile, "output", "o", "", "Output file for the skeleton (default stdout)")
}
