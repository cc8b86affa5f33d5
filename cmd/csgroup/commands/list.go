package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/csgroup/cmd/csgroup/handlers"
)

// List returns the list command.
func List() *cobra.Command {
	var (
		opts  handlers.ListOptions
		scope scopeFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instance groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Output != handlers.OutputJSON && opts.Output != handlers.OutputTable {
				return fmt.Errorf("invalid --output %q: must be %s or %s", opts.Output, handlers.OutputTable, handlers.OutputJSON)
			}
			opts.Scope = scope.scope(cmd)
			return handlers.List(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", handlers.OutputTable, "Output format: table or json")
	flags.IntVarP(&opts.Verbosity, "verbose", "v", 0, "Log verbosity on stderr")
	addScopeFlags(flags, &scope)
	addAPIFlags(flags, &opts.API)

	return cmd
}
