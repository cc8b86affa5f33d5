package handlers

import (
	"context"
	"io"

	"github.com/go-logr/logr"

	"github.com/imamik/csgroup/internal/instancegroup"
	"github.com/imamik/csgroup/internal/logging"
	"github.com/imamik/csgroup/internal/metrics"
)

// EnsureOptions holds everything one ensure invocation needs.
type EnsureOptions struct {
	API         APIOptions
	Name        string
	State       string
	Scope       instancegroup.Scope
	DryRun      bool
	Output      string
	MetricsFile string
	Verbosity   int
}

// Ensure handles the ensure command.
//
// It converges the named instance group and writes the result record to
// stdout. On failure the failure record is written instead and a
// *FailureError is returned. Diagnostics go to stderr.
func Ensure(ctx context.Context, opts EnsureOptions, stdout, stderr io.Writer) error {
	log, _ := logging.ForInvocation(newLogger(stderr, opts.Verbosity))

	res, metricsFile, err := ensure(ctx, opts, log)
	if metricsFile == "" {
		metricsFile = opts.MetricsFile
	}
	if werr := metrics.WriteTextfile(metricsFile); werr != nil {
		log.Error(werr, "metrics not written", "path", metricsFile)
	}
	if err != nil {
		log.V(1).Info("reconciliation failed", "group", opts.Name, "error", err.Error())
		return renderFailure(stdout, opts.Output, err)
	}
	return renderResult(stdout, opts.Output, opts.Name, res)
}

// ensure runs the reconciliation and reports which metrics file to write.
func ensure(ctx context.Context, opts EnsureOptions, log logr.Logger) (*instancegroup.Result, string, error) {
	if opts.Name == "" {
		return nil, "", argumentError{errMissingName}
	}
	state, err := instancegroup.ParseState(opts.State)
	if err != nil {
		return nil, "", argumentError{err}
	}

	cfg, err := loadConfig(opts.API)
	if err != nil {
		return nil, "", err
	}
	metricsFile := opts.MetricsFile
	if metricsFile == "" {
		metricsFile = cfg.MetricsFile
	}

	r := instancegroup.NewReconciler(newAPIClient(cfg, log),
		instancegroup.WithDryRun(opts.DryRun),
		instancegroup.WithLogger(log),
		instancegroup.WithObserver(instancegroup.NewLogObserver(log.V(1))),
	)

	res, err := r.Reconcile(ctx, instancegroup.Desired{
		Name:  opts.Name,
		State: state,
		Scope: opts.Scope,
	})
	return res, metricsFile, err
}
