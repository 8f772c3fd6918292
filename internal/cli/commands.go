package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// sweepInterval is the pause between set attempts in the test sweep,
// matching the settling time of the mechanical relays.
const sweepInterval = time.Second

func newNamesCmd(configPath *string, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the logical names of all discovered attenuators",
		Args:  cobra.NoArgs,
		RunE: runWithControl(configPath, version, func(cmd *cobra.Command, a *app, _ []string) error {
			for _, name := range a.ctl.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}),
	}
}

func newGetCmd(configPath *string, version string) *cobra.Command {
	return &cobra.Command{
		Use:     "get <name>",
		Aliases: []string{"get_val"},
		Short:   "Query the current attenuation of one instrument",
		Args:    cobra.ExactArgs(1),
		RunE: runWithControl(configPath, version, func(cmd *cobra.Command, a *app, args []string) error {
			printTriple(cmd, a.ctl.Value(args[0]))
			return nil
		}),
	}
}

func newAllowCmd(configPath *string, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "allow",
		Short: "List the supported attenuation values per instrument",
		Args:  cobra.NoArgs,
		RunE: runWithControl(configPath, version, func(cmd *cobra.Command, a *app, _ []string) error {
			allowed := a.ctl.AllowedValues()
			for _, name := range a.ctl.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(allowed[name], ", "))
			}
			return nil
		}),
	}
}

func newSetCmd(configPath *string, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Set an instrument to one of its supported attenuation values",
		Args:  cobra.ExactArgs(2),
		RunE: runWithControl(configPath, version, func(cmd *cobra.Command, a *app, args []string) error {
			printTriple(cmd, a.ctl.SetValue(args[0], args[1]))
			return nil
		}),
	}
}

func newStepCmd(configPath *string, version, direction string) *cobra.Command {
	short := "Increase attenuation by one step"
	if direction == "down" {
		short = "Decrease attenuation by one step"
	}

	return &cobra.Command{
		Use:   direction + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: runWithControl(configPath, version, func(cmd *cobra.Command, a *app, args []string) error {
			if direction == "up" {
				printTriple(cmd, a.ctl.StepUp(args[0]))
			} else {
				printTriple(cmd, a.ctl.StepDown(args[0]))
			}
			return nil
		}),
	}
}

func newTestCmd(configPath *string, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "test <name>",
		Short: "Sweep one instrument through every supported value",
		Long: "Sweep one instrument through every supported attenuation value, " +
			"pausing one second between set attempts and printing each result. " +
			"Intended as a manual diagnostic for the mechanical relays.",
		Args: cobra.ExactArgs(1),
		RunE: runWithControl(configPath, version, func(cmd *cobra.Command, a *app, args []string) error {
			name := args[0]
			values, ok := a.ctl.AllowedValues()[name]
			if !ok {
				return fmt.Errorf("unknown instrument name %q", name)
			}

			for i, token := range values {
				if i > 0 {
					select {
					case <-cmd.Context().Done():
						return cmd.Context().Err()
					case <-time.After(sweepInterval):
					}
				}
				printTriple(cmd, a.ctl.SetValue(name, token))
			}
			return nil
		}),
	}
}
