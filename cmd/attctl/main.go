// attctl - mechanical RF attenuator controller
//
// This is the command-line entry point for attctl. It discovers attenuator
// units attached as USB CDC-ACM serial devices and exposes query/set
// operations against them by stable logical names (att0, att1, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rfworks/attctl/internal/cli"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	// Cancel on interrupt so the test sweep stops between set attempts.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
