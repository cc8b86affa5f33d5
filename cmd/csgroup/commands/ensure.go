package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/csgroup/cmd/csgroup/handlers"
)

// Ensure returns the ensure command.
func Ensure() *cobra.Command {
	var (
		opts  handlers.EnsureOptions
		scope scopeFlags
	)

	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Create or remove an instance group",
		Long: `Ensure converges a named instance group to the desired state.

With --state present (the default) the group is created unless a group with
that name or id already exists. With --state absent an existing group is
deleted. At most one create or delete call is made.

The result record is printed as JSON unless --output text is given.

Example:
  csgroup ensure --name loadbalancers --domain engineering --account admin
  csgroup ensure --name loadbalancers --state absent --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Output != handlers.OutputJSON && opts.Output != handlers.OutputText {
				return fmt.Errorf("invalid --output %q: must be %s or %s", opts.Output, handlers.OutputJSON, handlers.OutputText)
			}
			opts.Scope = scope.scope(cmd)
			return handlers.Ensure(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Name, "name", "n", "", "Name of the instance group (required)")
	flags.StringVar(&opts.State, "state", "present", "Desired state: present or absent")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Report what would change without changing anything")
	flags.StringVarP(&opts.Output, "output", "o", handlers.OutputJSON, "Output format: json or text")
	flags.StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	flags.IntVarP(&opts.Verbosity, "verbose", "v", 0, "Log verbosity on stderr")
	addScopeFlags(flags, &scope)
	addAPIFlags(flags, &opts.API)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
