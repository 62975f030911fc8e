package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dividash/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the per-ticker share positions" }
func (*summaryCmd) Usage() string {
	return `divi summary [<ticker>...]

  Displays the holdings tiles: every ticker in the data file with its total
  share count. Naming tickers restricts the view to them.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := DecodeRecords()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() > 0 {
		records = records.Filter(f.Args()...)
	}

	printMarkdown(renderer.TilesMarkdown(records.SharesByTicker()))
	return subcommands.ExitSuccess
}
