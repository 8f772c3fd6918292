// Package cli implements the attctl command surface.
//
// Every subcommand performs the same startup sequence: load configuration,
// enumerate and filter serial devices, open one session per attenuator and
// build the registry. A startup failure (no devices, port busy, first query
// timing out) aborts the process with a non-zero status; per-operation
// failures are printed as result triples and exit zero.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rfworks/attctl/internal/attenuator"
	"github.com/rfworks/attctl/internal/infrastructure/config"
	"github.com/rfworks/attctl/internal/infrastructure/logging"
	"github.com/rfworks/attctl/internal/instrument"
	"github.com/rfworks/attctl/internal/transport"
)

const defaultConfigPath = "configs/config.yaml"

// Execute runs the attctl CLI. The context cancels long-running commands
// (the test sweep) on interrupt.
func Execute(ctx context.Context, version string) error {
	return newRootCmd(version).ExecuteContext(ctx)
}

func newRootCmd(version string) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "attctl",
		Short:         "attctl — control mechanical RF attenuators over USB serial",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath,
		"path to the YAML configuration file")

	cmd.AddCommand(
		newNamesCmd(&configPath, version),
		newGetCmd(&configPath, version),
		newAllowCmd(&configPath, version),
		newSetCmd(&configPath, version),
		newStepCmd(&configPath, version, "up"),
		newStepCmd(&configPath, version, "down"),
		newTestCmd(&configPath, version),
	)

	return cmd
}

// app holds everything a command needs after startup.
type app struct {
	log *logging.Logger
	reg *attenuator.Registry
	ctl *attenuator.Control
}

// setup performs the shared startup sequence and returns a ready control
// facade. Callers must invoke close when done.
func setup(configPath, version string) (*app, error) {
	// The default config path is optional; an explicitly given one is not.
	path := configPath
	if path == defaultConfigPath {
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.Logging, version)

	addresses, err := transport.Enumerate()
	if err != nil {
		return nil, err
	}
	matched := transport.FilterACM(addresses, cfg.Serial.Match)
	log.Debug("serial devices enumerated",
		"total", len(addresses),
		"matched", len(matched),
		"match", cfg.Serial.Match,
	)

	reg := attenuator.NewRegistry(func(address string) (attenuator.Instrument, error) {
		conn, openErr := transport.Open(address, cfg.Serial.BaudRate)
		if openErr != nil {
			return nil, openErr
		}
		return instrument.NewSession(address, conn, cfg.Serial.QueryTimeout(), cfg.Serial.LineTermination), nil
	})
	reg.SetLogger(log)

	if err := reg.Initialize(matched); err != nil {
		return nil, err
	}

	return &app{
		log: log,
		reg: reg,
		ctl: attenuator.NewControl(reg),
	}, nil
}

func (a *app) close() {
	if err := a.reg.Shutdown(); err != nil {
		a.log.Error("registry shutdown failed", "error", err)
	}
}

// runWithControl wraps a command body with the startup/teardown sequence.
func runWithControl(configPath *string, version string, fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := setup(*configPath, version)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(cmd, a, args)
	}
}

// printTriple renders one operation result on the command's stdout.
func printTriple(cmd *cobra.Command, res attenuator.Result) {
	fmt.Fprintln(cmd.OutOrStdout(), res)
}
