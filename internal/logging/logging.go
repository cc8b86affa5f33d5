// Package logging builds the logr.Logger used across csgroup.
package logging

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/google/uuid"
)

// New returns a logger writing to w. Messages logged with V(n) are shown when
// n <= verbosity.
func New(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.NewWithOptions(log.New(w, "", log.LstdFlags), stdr.Options{LogCaller: stdr.None})
}

// ForInvocation returns log tagged with a fresh invocation id, and the id.
func ForInvocation(log logr.Logger) (logr.Logger, string) {
	id := uuid.NewString()
	return log.WithValues("invocation", id), id
}
