package dividash

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyProjection is returned by Summarize when invoked on an empty
// record sequence. Simulate always returns at least one record, so hitting
// this error indicates a caller bug.
var ErrEmptyProjection = errors.New("empty projection")

// ProjectionSummary provides an at-a-glance overview of a simulated DRIP
// projection, reduced from its first and last records.
type ProjectionSummary struct {
	TotalReturn           Percent // growth of the portfolio value over the projection
	ReinvestmentAdvantage Percent // final value versus holding the initial shares flat
	SharesGained          float64 // shares accumulated through reinvestment
	TotalDividends        float64 // cash dividends received over all years
}

// Summarize reduces a projection into its summary metrics. Percentages
// computed against a zero baseline are undefined (NaN) rather than an error;
// the presentation layer decides how to display them.
func Summarize(records []YearRecord) (*ProjectionSummary, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("cannot summarize projection: %w", ErrEmptyProjection)
	}
	first, last := records[0], records[len(records)-1]

	s := &ProjectionSummary{
		TotalReturn:           growthOver(first.PortfolioValue, last.PortfolioValue),
		ReinvestmentAdvantage: growthOver(last.ValueWithoutReinvestment, last.PortfolioValue),
		SharesGained:          last.Shares - first.Shares,
	}
	for _, r := range records {
		s.TotalDividends += r.DividendIncome
	}
	return s, nil
}

// growthOver returns the relative growth from base to final in percent, or
// NaN when the baseline is zero.
func growthOver(base, final float64) Percent {
	if base == 0 {
		return Percent(math.NaN())
	}
	return Percent((final - base) / base * 100)
}
