package main

import (
	"github.com/jasal82/cconfig/internal/cli"
	"github.com/spf13/cobra"
)

var (
	// Command-specific flags for convert
	convertOutputFile string
	convertFromYAML   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [input-file]",
	Short: "Convert between configuration syntax and YAML",
	Long: `Convert a configuration file to YAML, or YAML back to configuration syntax.

Examples:
  cconfig convert app.cfg -o app.yaml
  cconfig convert app.yaml --from-yaml -o app.cfg`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ConvertOptions{
			InputFile:  args[0],
			OutputFile: convertOutputFile,
			FromYAML:   convertFromYAML,
			Verbose:    verbose,
		}

		cli.ConvertRun(opts)
	},
}

func init() {
	// Convert command specific flags
	convertCmd.Flags().StringVarP(&convertOutputFile, "output", "o", "", "Output file (default stdout)")
	convertCmd.Flags().BoolVar(&convertFromYAML, "from-yaml", false, "Treat the input as YAML and emit configuration syntax")
}
