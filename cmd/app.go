// Package cmd implements the CLI application to look up exchange rates and
// convert amounts between currencies.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/phwrscr1pt/fxconvert"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&replCmd{}, "interactive")

	c.Register(&currenciesCmd{}, "rates")
	c.Register(&rateCmd{}, "rates")
	c.Register(&convertCmd{}, "rates")
	c.Register(&baseCmd{}, "rates")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var apiURL = flag.String("api", fxconvert.FrankfurterURL, "Base URL of the Frankfurter-compatible rate API")
var logFile = flag.String("log", "fxconvert.log", "Path to the session audit log file")
var baseCurrency = flag.String("base", "", "Initial base currency code (default USD)")

// newSession builds a Session wired to the console, the configured rate API
// and the audit log. The returned cleanup must run on every exit path: it
// closes the audit log and detaches the console signal handler.
func newSession(ctx context.Context) (s *fxconvert.Session, in *consolePrompter, cleanup func()) {
	rec := fxconvert.OpenFileRecorder(*logFile)
	in = newConsolePrompter(os.Stdout, os.Stdin)
	s = fxconvert.NewSession(os.Stdout, in, fxconvert.NewFrankfurterAt(*apiURL), rec)

	if *baseCurrency != "" {
		if err := s.SetBaseTo(ctx, *baseCurrency); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, keeping base %s\n", err, s.Base())
		}
	}

	return s, in, func() {
		in.Close()
		rec.Close()
	}
}

// exitStatus maps an action outcome to a process exit status. A cancelled
// or interrupted action is not a failure: the user chose to stop.
func exitStatus(o fxconvert.Outcome) subcommands.ExitStatus {
	if o == fxconvert.Unavailable {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
