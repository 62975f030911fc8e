package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dividash/renderer"
	"github.com/google/subcommands"
)

// distributionCmd holds the flags for the 'distribution' subcommand.
type distributionCmd struct{}

func (*distributionCmd) Name() string     { return "distribution" }
func (*distributionCmd) Synopsis() string { return "display each ticker's share of the dividend income" }
func (*distributionCmd) Usage() string {
	return `divi distribution [<ticker>...]

  Displays the total net dividends per ticker and each ticker's share of
  the total. Naming tickers restricts the view to them.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {}

func (c *distributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := DecodeRecords()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() > 0 {
		records = records.Filter(f.Args()...)
	}

	printMarkdown(renderer.DistributionMarkdown(records.Distribution()))
	return subcommands.ExitSuccess
}
