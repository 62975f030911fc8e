package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/dividash"
)

// TilesMarkdown renders the per-ticker share positions, the metric tiles of
// the dashboard.
func TilesMarkdown(shares []dividash.TickerShares) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| Ticker | Shares |")
		fmt.Fprintln(w, "|:---|---:|")
		for _, s := range shares {
			fmt.Fprintf(w, "| %s | %s |\n", s.Ticker, s.Shares)
		}
		return len(shares) > 0
	})
	if len(shares) == 0 {
		fmt.Fprintln(&b, "No holdings in the data file.")
	}
	return b.String()
}

// DistributionMarkdown renders each ticker's share of the total net dividend
// income, with a bar column standing in for the pie chart.
func DistributionMarkdown(weights []dividash.TickerWeight) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Dividend Distribution\n\n")

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| Ticker | Net Dividends | Share | |")
		fmt.Fprintln(w, "|:---|---:|---:|:---|")
		for _, d := range weights {
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
				d.Ticker,
				d.Total,
				d.Weight,
				bar(float64(d.Weight)),
			)
		}
		return len(weights) > 0
	})
	if len(weights) == 0 {
		fmt.Fprintln(&b, "No dividends in the data file.")
	}
	return b.String()
}
