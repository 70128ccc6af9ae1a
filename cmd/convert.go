package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type convertCmd struct{}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between two currencies" }
func (*convertCmd) Usage() string {
	return `fxc convert

Interactively ask for a source currency, a target currency, a non-negative
amount and an optional date, then display the converted amount together with
the rate used. Each input grants at most three invalid attempts before the
conversion is cancelled.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, cleanup := newSession(ctx)
	defer cleanup()
	return exitStatus(s.Convert(ctx))
}
