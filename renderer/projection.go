package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/dividash"
)

// ProjectionMarkdown renders the simple no-reinvestment dividend growth
// projection for one ticker.
func ProjectionMarkdown(ticker string, growth dividash.Percent, projected []dividash.ProjectedDividend, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Dividend Projection — %s\n\n", ticker)
	fmt.Fprintf(&b, "Assuming a fixed growth of %s per year, no reinvestment.\n\n", growth)

	fmt.Fprintln(&b, "| Year | Projected Dividend |")
	fmt.Fprintln(&b, "|---|---:|")
	for _, p := range projected {
		fmt.Fprintf(&b, "| %d | %s |\n", p.Year, amount(currency, p.Dividend))
	}

	if len(projected) > 1 {
		first, last := projected[0], projected[len(projected)-1]
		fmt.Fprintf(&b, "\nFrom %s to %s over %d years.\n",
			amount(currency, first.Dividend),
			amount(currency, last.Dividend),
			len(projected)-1,
		)
	}
	return b.String()
}
