package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "look up an exchange rate for a currency pair" }
func (*rateCmd) Usage() string {
	return `fxc rate

Interactively ask for a base currency, a target currency and an optional
date, then display the exchange rate. Press Enter at the date prompt for the
latest rate. The displayed date is the provider's: requests for non-business
days are snapped to the nearest published one.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {}

func (c *rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, cleanup := newSession(ctx)
	defer cleanup()
	return exitStatus(s.ShowRate(ctx))
}
