// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in the
// handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the csgroup CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csgroup",
		Short: "Manage CloudStack instance groups declaratively",
		// Handlers print their own failure records.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Ensure())
	cmd.AddCommand(List())
	cmd.AddCommand(Module())
	cmd.AddCommand(Version())

	return cmd
}
