package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/phwrscr1pt/fxconvert"
)

const banner = `
  __
 / _|_  _____
| |_\ \/ / __|
|  _|>  < (__
|_| /_/\_\___|   welcome to the currency converter
`

type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start the interactive conversion session" }
func (*replCmd) Usage() string {
	return `fxc repl

Start the interactive menu: list currencies, convert amounts, look up rates
and change the base currency, with every input guarded by a three-attempt
retry rule. Ctrl+C during an action cancels the action; Ctrl+C at the menu
ends the session.
`
}

func (c *replCmd) SetFlags(f *flag.FlagSet) {}

// showMenu displays current time, base currency, and menu options.
func showMenu(w io.Writer, s *fxconvert.Session) {
	fmt.Fprintf(w, "Time (local): %s\n", time.Now().Format(fxconvert.TimestampFormat))
	fmt.Fprintf(w, "Base currency: %s\n", s.Base())
	fmt.Fprint(w, `
[1] List currencies
[2] Convert amount
[3] Show rate
[4] Change base currency
[9] Show menu again
[0] Quit

`)
}

func (c *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, in, cleanup := newSession(ctx)
	defer cleanup()

	w := s.Writer()
	fmt.Fprintf(w, "%s\n", banner)
	showMenu(w, s)

	for {
		line, err := in.ReadLine("Select option (0=Quit, 9=Menu): ")
		if err != nil {
			if errors.Is(err, fxconvert.ErrInterrupted) {
				fmt.Fprintln(w, "Bye!")
				s.Record("User terminated session with Ctrl+C in main loop.")
				return subcommands.ExitSuccess
			}
			fmt.Fprintf(w, "input error: %v\n", err)
			return subcommands.ExitFailure
		}

		switch strings.TrimSpace(line) {
		case "1":
			s.ListCurrencies(ctx)
		case "2":
			s.Convert(ctx)
		case "3":
			s.ShowRate(ctx)
		case "4":
			s.SetBase(ctx)
		case "9":
			showMenu(w, s)
		case "0":
			fmt.Fprintln(w, "Bye!")
			s.Record("User selected Quit.")
			return subcommands.ExitSuccess
		case "":
			continue
		default:
			fmt.Fprintln(w, "[!] Unknown option. Press 9 to show the menu.")
		}
	}
}
