package dividash

import (
	"testing"
)

func sampleRecords() Records {
	return Records{
		{Ticker: "AAPL.US", Shares: Q(10), NetDividend: USD(2.40), TaxCollected: 15},
		{Ticker: "CDR.PL", Shares: Q(50), NetDividend: PLN(0), TaxCollected: 19},
		{Ticker: "AAPL.US", Shares: Q(5), NetDividend: USD(1.20), TaxCollected: 15},
		{Ticker: "MSFT.US", Shares: Q(8), NetDividend: USD(2.40), TaxCollected: 15},
		{Ticker: "CDR.PL", Shares: Q(25), NetDividend: PLN(100), TaxCollected: 19},
	}
}

func TestRecords_Filter(t *testing.T) {
	records := sampleRecords()

	filtered := records.Filter("AAPL.US")
	if len(filtered) != 2 {
		t.Fatalf("Filter(AAPL.US) returned %d records, want 2", len(filtered))
	}
	for _, r := range filtered {
		if r.Ticker != "AAPL.US" {
			t.Errorf("Filter(AAPL.US) kept ticker %q", r.Ticker)
		}
	}

	if got := records.Filter(); got != nil {
		t.Errorf("Filter() = %v, want nil when no ticker is selected", got)
	}
}

func TestRecords_Tickers(t *testing.T) {
	got := sampleRecords().Tickers()
	want := []string{"AAPL.US", "CDR.PL", "MSFT.US"}
	if len(got) != len(want) {
		t.Fatalf("Tickers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tickers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecords_SharesByTicker(t *testing.T) {
	got := sampleRecords().SharesByTicker()

	want := []TickerShares{
		{Ticker: "AAPL.US", Shares: Q(15)},
		{Ticker: "CDR.PL", Shares: Q(75)},
		{Ticker: "MSFT.US", Shares: Q(8)},
	}
	if len(got) != len(want) {
		t.Fatalf("SharesByTicker() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Ticker != want[i].Ticker || !got[i].Shares.Equal(want[i].Shares) {
			t.Errorf("SharesByTicker()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRecords_DividendsByTicker(t *testing.T) {
	got := sampleRecords().DividendsByTicker()

	want := []TickerDividend{
		{Ticker: "AAPL.US", Total: USD(3.60)},
		{Ticker: "CDR.PL", Total: PLN(100)},
		{Ticker: "MSFT.US", Total: USD(2.40)},
	}
	if len(got) != len(want) {
		t.Fatalf("DividendsByTicker() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Ticker != want[i].Ticker || !got[i].Total.Equal(want[i].Total) {
			t.Errorf("DividendsByTicker()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRecords_Distribution(t *testing.T) {
	records := Records{
		{Ticker: "AAPL.US", Shares: Q(10), NetDividend: USD(30)},
		{Ticker: "MSFT.US", Shares: Q(10), NetDividend: USD(70)},
	}

	weights := records.Distribution()
	if len(weights) != 2 {
		t.Fatalf("Distribution() returned %d entries, want 2", len(weights))
	}
	if !weights[0].Weight.Equal(30) {
		t.Errorf("AAPL.US weight = %v, want 30%%", weights[0].Weight)
	}
	if !weights[1].Weight.Equal(70) {
		t.Errorf("MSFT.US weight = %v, want 70%%", weights[1].Weight)
	}

	var sum Percent
	for _, w := range weights {
		sum += w.Weight
	}
	if !sum.Equal(100) {
		t.Errorf("weights sum to %v, want 100%%", sum)
	}
}

func TestRecords_Distribution_ZeroTotal(t *testing.T) {
	records := Records{
		{Ticker: "AAPL.US", Shares: Q(10), NetDividend: USD(0)},
	}
	weights := records.Distribution()
	if weights[0].Weight.IsDefined() {
		t.Errorf("weight = %v, want undefined on a zero total", weights[0].Weight)
	}
}

func TestRecords_InitialDividend(t *testing.T) {
	records := sampleRecords()

	// the first CDR.PL record pays zero, the projection seed is the second
	got, ok := records.InitialDividend("CDR.PL")
	if !ok {
		t.Fatal("InitialDividend(CDR.PL) not found")
	}
	if !got.Equal(PLN(100)) {
		t.Errorf("InitialDividend(CDR.PL) = %v, want %v", got, PLN(100))
	}

	if _, ok := records.InitialDividend("NFLX.US"); ok {
		t.Error("InitialDividend(NFLX.US) found, want none")
	}
}
