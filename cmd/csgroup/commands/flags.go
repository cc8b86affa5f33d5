package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/imamik/csgroup/cmd/csgroup/handlers"
	"github.com/imamik/csgroup/internal/instancegroup"
)

// addAPIFlags binds the CloudStack API flags to opts.
func addAPIFlags(flags *pflag.FlagSet, opts *handlers.APIOptions) {
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a csgroup YAML configuration file")
	flags.StringVar(&opts.Key, "api-key", "", "CloudStack API key")
	flags.StringVar(&opts.Secret, "api-secret", "", "CloudStack API secret")
	flags.StringVar(&opts.URL, "api-url", "", "CloudStack API endpoint URL")
	flags.StringVar(&opts.HTTPMethod, "api-http-method", "", "HTTP method used for API calls (get or post)")
	flags.IntVar(&opts.TimeoutSeconds, "api-timeout", 0, "API request timeout in seconds")
}

type scopeFlags struct {
	domain  string
	account string
	project string
}

func addScopeFlags(flags *pflag.FlagSet, s *scopeFlags) {
	flags.StringVar(&s.domain, "domain", "", "Domain the instance group is related to")
	flags.StringVar(&s.account, "account", "", "Account the instance group is related to")
	flags.StringVar(&s.project, "project", "", "Project the instance group is related to")
}

// scope returns the scope with only the flags that were given set.
func (s *scopeFlags) scope(cmd *cobra.Command) instancegroup.Scope {
	var out instancegroup.Scope
	flags := cmd.Flags()
	if flags.Changed("domain") {
		out.Domain = &s.domain
	}
	if flags.Changed("account") {
		out.Account = &s.account
	}
	if flags.Changed("project") {
		out.Project = &s.project
	}
	return out
}
