package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jasal82/cconfig/internal/api"
)

// ServeOptions holds configuration for the serve command
type ServeOptions struct {
	Port    int `validate:"required,min=1,max=65535"`
	Version string
}

// ServeRun starts the validation HTTP service and blocks until it is
// interrupted.
func ServeRun(opts ServeOptions) {
	if err := checkOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	server := api.NewServer(api.ServerConfig{
		Port:    opts.Port,
		Version: opts.Version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.StartWithContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Server error: %v\n", err)
		os.Exit(1)
	}
}
