package main

import (
	"github.com/jasal82/cconfig/internal/cli"
	"github.com/spf13/cobra"
)

var (
	// Command-specific flags for generate
	generateOutputFile string
	generatePackage    string
	generateNoStamp    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [schema-file]",
	Short: "Generate a typed wrapper from a schema",
	Long: `Generate Go source code providing typed access to configurations of a schema.

The generated file contains one struct per group, extraction functions, the
schema tree itself and a LoadConfig entry point that validates strictly
before extraction. If the schema file lives in a Git repository, its
revision is stamped into the file header.

Examples:
  cconfig generate app.schema -o appconfig.go --package appconfig
  cconfig generate app.schema -o appconfig.go --package appconfig --no-stamp`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.GenerateOptions{
			SchemaFile: args[0],
			OutputFile: generateOutputFile,
			Package:    generatePackage,
			NoStamp:    generateNoStamp,
			Verbose:    verbose,
		}

		cli.GenerateRun(opts)
	},
}

func init() {
	// Generate command specific flags
	generateCmd.Flags().StringVarP(&generateOutputFile, "output", "o", "config_wrapper.go", "Output file for the generated wrapper")
	generateCmd.Flags().StringVar(&generatePackage, "package", "appconfig", "Package name for the generated file")
	generateCmd.Flags().BoolVar(&generateNoStamp, "no-stamp", false, "Skip the schema revision stamp in the header")
}
