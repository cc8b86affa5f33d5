package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/csgroup/cmd/csgroup/handlers"
)

// Module returns the module command.
//
// It lets csgroup run as an Ansible binary module: the single argument is the
// path of the JSON arguments file and the answer is always JSON on stdout.
func Module() *cobra.Command {
	return &cobra.Command{
		Use:   "module ARGS_FILE",
		Short: "Run as an Ansible binary module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Module(cmd.Context(), args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}
