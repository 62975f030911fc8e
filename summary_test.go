package dividash

import (
	"errors"
	"testing"
)

func TestSummarize(t *testing.T) {
	records := []YearRecord{
		{Year: 0, Shares: 100, PortfolioValue: 1000, ValueWithoutReinvestment: 950, DividendIncome: 40},
		{Year: 1, Shares: 105, PortfolioValue: 1400, ValueWithoutReinvestment: 1200, DividendIncome: 60},
		{Year: 2, Shares: 110, PortfolioValue: 2000, ValueWithoutReinvestment: 1500, DividendIncome: 80},
	}

	s, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if want := Percent(100); !s.TotalReturn.Equal(want) {
		t.Errorf("TotalReturn = %v, want %v", s.TotalReturn, want)
	}
	// (2000 - 1500) / 1500
	if want := Percent(100.0 / 3); !s.ReinvestmentAdvantage.Equal(want) {
		t.Errorf("ReinvestmentAdvantage = %v, want %v", s.ReinvestmentAdvantage, want)
	}
	if s.SharesGained != 10 {
		t.Errorf("SharesGained = %v, want 10", s.SharesGained)
	}
	if s.TotalDividends != 180 {
		t.Errorf("TotalDividends = %v, want 180", s.TotalDividends)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s, err := Summarize(nil)
	if !errors.Is(err, ErrEmptyProjection) {
		t.Fatalf("Summarize(nil) error = %v, want ErrEmptyProjection", err)
	}
	if s != nil {
		t.Errorf("Summarize(nil) = %v, want nil", s)
	}
}

func TestSummarize_ZeroBaseline(t *testing.T) {
	records := []YearRecord{
		{Year: 0, Shares: 100, PortfolioValue: 0, ValueWithoutReinvestment: 0},
		{Year: 1, Shares: 100, PortfolioValue: 0, ValueWithoutReinvestment: 0},
	}

	s, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize() error = %v, zero baselines must not be fatal", err)
	}
	if s.TotalReturn.IsDefined() {
		t.Errorf("TotalReturn = %v, want undefined", s.TotalReturn)
	}
	if s.ReinvestmentAdvantage.IsDefined() {
		t.Errorf("ReinvestmentAdvantage = %v, want undefined", s.ReinvestmentAdvantage)
	}
	if got := s.TotalReturn.String(); got != "-" {
		t.Errorf("TotalReturn.String() = %q, want %q", got, "-")
	}
}

func TestSummarize_FromSimulation(t *testing.T) {
	records, err := Simulate(quarterly)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	s, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	first, last := records[0], records[len(records)-1]
	if s.SharesGained != last.Shares-first.Shares {
		t.Errorf("SharesGained = %v, want %v", s.SharesGained, last.Shares-first.Shares)
	}
	if !almostEqual(s.TotalDividends, first.DividendIncome+last.DividendIncome) {
		t.Errorf("TotalDividends = %v, want %v", s.TotalDividends, first.DividendIncome+last.DividendIncome)
	}
	if float64(s.ReinvestmentAdvantage) <= 0 {
		t.Errorf("ReinvestmentAdvantage = %v, want > 0", s.ReinvestmentAdvantage)
	}
}
