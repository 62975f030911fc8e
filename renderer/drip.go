// Package renderer turns dividash reports into markdown, ready to be
// printed on a terminal or published as-is.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/dividash"
)

// DripMarkdown renders a full DRIP projection: the summary metric cards
// first, then the year-by-year table.
func DripMarkdown(ticker string, records []dividash.YearRecord, summary *dividash.ProjectionSummary, currency string, startYear int) string {
	var b strings.Builder

	title := "DRIP Projection"
	if ticker != "" {
		title += " — " + ticker
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if summary != nil {
		last := records[len(records)-1]
		fmt.Fprintln(&b, "| Total Return | DRIP Advantage | Shares Gained | Total Dividends |")
		fmt.Fprintln(&b, "|---:|---:|---:|---:|")
		fmt.Fprintf(&b, "| %s | %s | %.2f | %s |\n\n",
			summary.TotalReturn.SignedString(),
			summary.ReinvestmentAdvantage.SignedString(),
			summary.SharesGained,
			amount(currency, summary.TotalDividends),
		)
		fmt.Fprintf(&b, "Final portfolio value: %s, of which %s from reinvestment.\n\n",
			amount(currency, last.PortfolioValue),
			amount(currency, last.ReinvestmentBenefit),
		)
	}

	fmt.Fprintln(&b, "## Year by Year")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Year | Shares | Added | Price | Dividend/Share | Income | Portfolio | Without DRIP | Benefit |")
	fmt.Fprintln(&b, "|---|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, r := range records {
		fmt.Fprintf(&b, "| %d | %.2f | %.2f | %s | %s | %s | %s | %s | %s |\n",
			startYear+r.Year,
			r.Shares,
			r.SharesAdded,
			amount(currency, r.SharePrice),
			amount(currency, r.AnnualDividend),
			amount(currency, r.DividendIncome),
			amount(currency, r.PortfolioValue),
			amount(currency, r.ValueWithoutReinvestment),
			amount(currency, r.ReinvestmentBenefit),
		)
	}
	return b.String()
}
