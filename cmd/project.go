package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/dividash"
	"github.com/etnz/dividash/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	ticker string
	growth float64
	years  int
}

func (*projectCmd) Name() string { return "project" }
func (*projectCmd) Synopsis() string {
	return "project a ticker's dividend by a fixed growth rate, no reinvestment"
}
func (*projectCmd) Usage() string {
	return `divi project -t <ticker> [-growth <pct>] [-years <n>]

  Projects the ticker's dividend stream by a fixed yearly growth rate,
  seeded by the first positive net dividend recorded in the data file.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker to project, as recorded in the data file.")
	f.Float64Var(&c.growth, "growth", 4.0, "Annual dividend growth rate in percent.")
	f.IntVar(&c.years, "years", 15, "Years to project (1 to 30).")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is required")
		return subcommands.ExitUsageError
	}
	if c.years < 1 || c.years > 30 {
		fmt.Fprintf(os.Stderr, "Error: -years must be between 1 and 30, got %d\n", c.years)
		return subcommands.ExitUsageError
	}

	records, err := DecodeRecords()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	seed, ok := records.InitialDividend(c.ticker)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no recorded dividend for ticker %q\n", c.ticker)
		return subcommands.ExitFailure
	}

	growth := dividash.Percent(c.growth)
	projected := dividash.ProjectDividends(seed.AsFloat(), growth, time.Now().Year(), c.years)

	currency := dividash.CurrencyFor(c.ticker).Grapheme
	printMarkdown(renderer.ProjectionMarkdown(c.ticker, growth, projected, currency))

	return subcommands.ExitSuccess
}
