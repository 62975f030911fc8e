package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/dividash"
)

func TestDripMarkdown(t *testing.T) {
	in := dividash.SimulationInput{
		InitialShares:  100,
		SharePrice:     50,
		AnnualDividend: 2,
		Years:          1,
		Frequency:      4,
	}
	records, err := dividash.Simulate(in)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	summary, err := dividash.Summarize(records)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	md := DripMarkdown("AAPL.US", records, summary, "$", 2026)

	for _, want := range []string{
		"# DRIP Projection — AAPL.US",
		"| Total Return | DRIP Advantage | Shares Gained | Total Dividends |",
		"## Year by Year",
		"| 2026 |",
		"| 2027 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("DripMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestTilesMarkdown(t *testing.T) {
	shares := []dividash.TickerShares{
		{Ticker: "AAPL.US", Shares: dividash.Q(15)},
		{Ticker: "MSFT.US", Shares: dividash.Q(8)},
	}
	md := TilesMarkdown(shares)
	for _, want := range []string{"# Holdings", "| AAPL.US | 15 |", "| MSFT.US | 8 |"} {
		if !strings.Contains(md, want) {
			t.Errorf("TilesMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestTilesMarkdown_Empty(t *testing.T) {
	md := TilesMarkdown(nil)
	if !strings.Contains(md, "No holdings") {
		t.Errorf("TilesMarkdown(nil) = %q, want empty notice", md)
	}
	if strings.Contains(md, "| Ticker |") {
		t.Errorf("TilesMarkdown(nil) rendered an empty table:\n%s", md)
	}
}

func TestDistributionMarkdown(t *testing.T) {
	records := dividash.Records{
		{Ticker: "AAPL.US", Shares: dividash.Q(10), NetDividend: dividash.M(30.0, "USD")},
		{Ticker: "MSFT.US", Shares: dividash.Q(10), NetDividend: dividash.M(70.0, "USD")},
	}
	md := DistributionMarkdown(records.Distribution())
	for _, want := range []string{"# Dividend Distribution", "30.00%", "70.00%", "█"} {
		if !strings.Contains(md, want) {
			t.Errorf("DistributionMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestProjectionMarkdown(t *testing.T) {
	projected := dividash.ProjectDividends(100, 4, 2026, 3)
	md := ProjectionMarkdown("CDR.PL", 4, projected, "PLN")
	for _, want := range []string{
		"# Dividend Projection — CDR.PL",
		"4.00%",
		"| 2026 | PLN100.00 |",
		"| 2028 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ProjectionMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestBar(t *testing.T) {
	if got := bar(100); got != strings.Repeat("█", 20) {
		t.Errorf("bar(100) = %q, want 20 glyphs", got)
	}
	if got := bar(0); got != "" {
		t.Errorf("bar(0) = %q, want empty", got)
	}
}
