package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/dividash"
	"github.com/etnz/dividash/renderer"
	"github.com/google/subcommands"
)

// dripCmd holds the flags for the 'drip' subcommand.
type dripCmd struct {
	ticker         string
	shares         float64
	price          float64
	dividend       float64
	dividendGrowth float64
	priceGrowth    float64
	years          int
	frequency      int
}

func (*dripCmd) Name() string { return "drip" }
func (*dripCmd) Synopsis() string {
	return "simulate the compounding of a position under dividend reinvestment"
}
func (*dripCmd) Usage() string {
	return `divi drip [-t <ticker>] -shares <n> -price <p> -dividend <d> [options]

  Simulates a Dividend Reinvestment Plan year by year and displays the
  projection table with its summary metrics. The simulation is a pure
  function of the flags; the data file is not consulted.

Usage Examples:
$ divi drip -shares 100 -price 50 -dividend 2 -div-growth 5 -price-growth 8 -years 20
`
}

func (c *dripCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker, only used for the title and the display currency.")
	f.Float64Var(&c.shares, "shares", 100, "Initial number of shares.")
	f.Float64Var(&c.price, "price", 100, "Current share price.")
	f.Float64Var(&c.dividend, "dividend", 4, "Annual dividend per share.")
	f.Float64Var(&c.dividendGrowth, "div-growth", 5, "Annual dividend growth rate in percent.")
	f.Float64Var(&c.priceGrowth, "price-growth", 8, "Annual share price growth rate in percent.")
	f.IntVar(&c.years, "years", 20, "Years to project.")
	f.IntVar(&c.frequency, "frequency", 4, "Dividend payments per year (1, 2, 4 or 12).")
}

func (c *dripCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := dividash.SimulationInput{
		InitialShares:  c.shares,
		SharePrice:     c.price,
		AnnualDividend: c.dividend,
		DividendGrowth: dividash.Percent(c.dividendGrowth),
		PriceGrowth:    dividash.Percent(c.priceGrowth),
		Years:          c.years,
		Frequency:      c.frequency,
	}

	records, err := dividash.Simulate(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, dividash.ErrInvalidInput) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	summary, err := dividash.Summarize(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing projection: %v\n", err)
		return subcommands.ExitFailure
	}

	currency := dividash.CurrencyFor(c.ticker).Grapheme
	printMarkdown(renderer.DripMarkdown(c.ticker, records, summary, currency, time.Now().Year()))

	return subcommands.ExitSuccess
}
