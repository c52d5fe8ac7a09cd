package main

import (
	"github.com/jasal82/cconfig/internal/cli"
	"github.com/spf13/cobra"
)

var (
	// Command-specific flags for serve
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the validation HTTP service",
	Long: `Run an HTTP service that validates configurations against schemas.

The service accepts schema and configuration source over POST /api/v1/validate
and reports the validation outcome, so build pipelines can check
configurations without installing the binary.

Examples:
  cconfig serve
  cconfig serve --port 9090`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ServeOptions{
			Port:    servePort,
			Version: version,
		}

		cli.ServeRun(opts)
	},
}

func init() {
	// Serve command specific flags
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
}
