package handlers

import (
	"context"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/imamik/csgroup/internal/instancegroup"
	"github.com/imamik/csgroup/internal/logging"
	"github.com/imamik/csgroup/internal/util/ptr"
)

// ListOptions holds the parameters of the list command.
type ListOptions struct {
	API       APIOptions
	Scope     instancegroup.Scope
	Output    string
	Verbosity int
}

// List handles the list command. It prints the instance groups visible under
// the scope as a table or as a JSON array of result fields.
func List(ctx context.Context, opts ListOptions, stdout, stderr io.Writer) error {
	log, _ := logging.ForInvocation(newLogger(stderr, opts.Verbosity))

	failFormat := opts.Output
	if failFormat != OutputJSON {
		failFormat = OutputText
	}

	cfg, err := loadConfig(opts.API)
	if err != nil {
		return renderFailure(stdout, failFormat, err)
	}

	r := instancegroup.NewReconciler(newAPIClient(cfg, log), instancegroup.WithLogger(log))
	groups, err := r.List(ctx, opts.Scope)
	if err != nil {
		return renderFailure(stdout, failFormat, err)
	}

	if opts.Output == OutputJSON {
		out := make([]map[string]string, 0, len(groups))
		for _, g := range groups {
			out = append(out, instancegroup.Project(g))
		}
		return writeJSON(stdout, out)
	}

	renderGroupTable(stdout, groups)
	return nil
}

func renderGroupTable(w io.Writer, groups []*instancegroup.Descriptor) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Name", "ID", "Account", "Domain", "Project", "Created"})
	for _, g := range groups {
		t.AppendRow(table.Row{
			g.Name,
			g.ID,
			ptr.Deref(g.Account),
			ptr.Deref(g.Domain),
			ptr.Deref(g.Project),
			g.Created,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(groups)})
	t.Render()
}
