package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type baseCmd struct{}

func (*baseCmd) Name() string     { return "base" }
func (*baseCmd) Synopsis() string { return "change the session base currency" }
func (*baseCmd) Usage() string {
	return `fxc base [<code>]

Change the base currency used as the default source for conversions and
rate lookups. With a code argument the change is immediate; without one, the
code is asked for interactively (Enter cancels).
`
}

func (c *baseCmd) SetFlags(f *flag.FlagSet) {}

func (c *baseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, cleanup := newSession(ctx)
	defer cleanup()

	if f.NArg() > 0 {
		code := f.Arg(0)
		if err := s.SetBaseTo(ctx, code); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("[✓] Base currency set to %s\n", s.Base())
		s.Record("Base currency changed to " + s.Base())
		return subcommands.ExitSuccess
	}

	return exitStatus(s.SetBase(ctx))
}
