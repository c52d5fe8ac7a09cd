package main

import (
	"github.com/jasal82/cconfig/internal/cli"
	"github.com/spf13/cobra"
)

var (
	// Command-specific flags for validate
	validateSchemaFile string
	validateStrict     bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate a configuration file against a schema",
	Long: `Validate a configuration file against a schema definition.

Validation checks structure, types and required settings. In strict mode,
settings not declared in the schema are reported as errors.

Examples:
  cconfig validate app.cfg --schema app.schema
  cconfig validate app.cfg --schema app.schema --strict`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ValidateOptions{
			SchemaFile: validateSchemaFile,
			ConfigFile: args[0],
			Strict:     validateStrict,
			Verbose:    verbose,
		}

		cli.ValidateRun(opts)
	},
}

func init() {
	// Validate command specific flags
	validateCmd.Flags().StringVarP(&validateSchemaFile, "schema", "s", "", "Schema file to validate against")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Report settings not declared in the schema")
	validateCmd.MarkFlagRequired("schema")
}
