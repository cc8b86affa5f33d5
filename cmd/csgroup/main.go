// Package main is the entry point for the csgroup CLI.
//
// csgroup keeps an Apache CloudStack instance group in a desired state. It
// can be driven from the command line or run as an Ansible binary module.
//
// Commands: ensure, list, module, version.
//
// For detailed usage information, run:
//
//	csgroup --help
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/imamik/csgroup/cmd/csgroup/commands"
	"github.com/imamik/csgroup/cmd/csgroup/handlers"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		if !errors.Is(err, handlers.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
