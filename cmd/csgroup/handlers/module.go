package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/imamik/csgroup/internal/instancegroup"
)

// moduleArgs is the argument file an automation controller hands to a binary module.
type moduleArgs struct {
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Domain  *string `json:"domain"`
	Account *string `json:"account"`
	Project *string `json:"project"`

	APIKey        string `json:"api_key"`
	APISecret     string `json:"api_secret"`
	APIURL        string `json:"api_url"`
	APIHTTPMethod string `json:"api_http_method"`
	APITimeout    int    `json:"api_timeout"`

	CheckMode bool `json:"_ansible_check_mode"`
}

// Module handles the module command: it reads a JSON argument file and
// always answers with a JSON record on stdout.
func Module(ctx context.Context, argsPath string, stdout, stderr io.Writer) error {
	args, err := readModuleArgs(argsPath)
	if err != nil {
		return renderFailure(stdout, OutputJSON, argumentError{err})
	}

	return Ensure(ctx, EnsureOptions{
		API: APIOptions{
			Key:            args.APIKey,
			Secret:         args.APISecret,
			URL:            args.APIURL,
			HTTPMethod:     args.APIHTTPMethod,
			TimeoutSeconds: args.APITimeout,
		},
		Name:  args.Name,
		State: args.State,
		Scope: instancegroup.Scope{
			Domain:  args.Domain,
			Account: args.Account,
			Project: args.Project,
		},
		DryRun: args.CheckMode,
		Output: OutputJSON,
	}, stdout, stderr)
}

func readModuleArgs(path string) (*moduleArgs, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module arguments: %w", err)
	}
	var args moduleArgs
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("failed to parse module arguments: %w", err)
	}
	return &args, nil
}
