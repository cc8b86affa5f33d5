package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/imamik/csgroup/internal/config"
	"github.com/imamik/csgroup/internal/instancegroup"
	"github.com/imamik/csgroup/internal/platform/cloudstack"
)

// Output formats.
const (
	OutputJSON  = "json"
	OutputText  = "text"
	OutputTable = "table"
)

// ErrReported is matched by errors whose message has already been written to
// the command output.
var ErrReported = errors.New("failure reported")

// FailureError is returned after a failure record was printed.
type FailureError struct {
	Msg string
}

func (e *FailureError) Error() string {
	return e.Msg
}

func (e *FailureError) Is(target error) bool {
	return target == ErrReported
}

// argumentError marks invalid user input; its message is shown as is.
type argumentError struct {
	err error
}

func (e argumentError) Error() string { return e.err.Error() }
func (e argumentError) Unwrap() error { return e.err }

// failureMessage renders err the way the failure record reports it.
func failureMessage(err error) string {
	var (
		mutation *instancegroup.MutationError
		scope    *instancegroup.ScopeError
		arg      argumentError
		tErr     *cloudstack.TransportError
	)
	switch {
	case errors.As(err, &mutation):
		return mutation.Error()
	case errors.As(err, &scope):
		return scope.Error()
	case errors.As(err, &arg):
		return arg.Error()
	case errors.Is(err, config.ErrClientUnavailable):
		return err.Error()
	case cloudstack.IsAPIError(err):
		return "CloudStackException: " + err.Error()
	case errors.As(err, &tErr) && tErr.StatusCode != 0:
		// The API answered, just not with a usable envelope.
		return "CloudStackException: " + err.Error()
	}
	return "Exception: " + err.Error()
}

type failureRecord struct {
	Failed bool   `json:"failed"`
	Msg    string `json:"msg"`
}

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorYellow = lipgloss.Color("#eab308")
	colorRed    = lipgloss.Color("#ef4444")
	colorDim    = lipgloss.Color("#6b7280")

	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	changedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	failedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	keyStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// render applies style only when w is a terminal.
func render(w io.Writer, style lipgloss.Style, s string) string {
	if !isTerminal(w) {
		return s
	}
	return style.Render(s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// renderResult writes a reconciliation result.
func renderResult(w io.Writer, format, name string, res *instancegroup.Result) error {
	if format != OutputText {
		return writeJSON(w, res)
	}

	status := render(w, okStyle, "ok")
	if res.Changed {
		status = render(w, changedStyle, "changed")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: instance group %s\n", status, name)
	keys := make([]string, 0, len(res.Fields))
	for k := range res.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s %s\n", render(w, keyStyle, k+":"), res.Fields[k])
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// renderFailure writes the failure record for err and returns the matching FailureError.
func renderFailure(w io.Writer, format string, err error) error {
	msg := failureMessage(err)
	if format == OutputText {
		_, _ = fmt.Fprintf(w, "%s: %s\n", render(w, failedStyle, "failed"), msg)
	} else if werr := writeJSON(w, failureRecord{Failed: true, Msg: msg}); werr != nil {
		return werr
	}
	return &FailureError{Msg: msg}
}
