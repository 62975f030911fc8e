package dividash

import (
	"math"
	"slices"
	"strings"
)

// Record is one dividend payment line from the data file: a ticker, the
// share position it was paid on, the net cash amount and the tax withheld.
type Record struct {
	Ticker       string
	Shares       Quantity
	NetDividend  Money
	TaxCollected Percent
}

// Records is the cleaned dividend table the dashboard works on. All methods
// are pure reductions; Records is never mutated in place.
type Records []Record

// Filter returns the records belonging to the selected tickers, in their
// original order. No tickers selected means no records.
func (rs Records) Filter(tickers ...string) Records {
	var filtered Records
	for _, r := range rs {
		if slices.Contains(tickers, r.Ticker) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Tickers returns the sorted list of distinct tickers in the table.
func (rs Records) Tickers() []string {
	var tickers []string
	for _, r := range rs {
		if !slices.Contains(tickers, r.Ticker) {
			tickers = append(tickers, r.Ticker)
		}
	}
	slices.Sort(tickers)
	return tickers
}

// TickerShares is the aggregated share position of one ticker.
type TickerShares struct {
	Ticker string
	Shares Quantity
}

// SharesByTicker aggregates the share position per ticker, sorted by ticker.
func (rs Records) SharesByTicker() []TickerShares {
	totals := make(map[string]Quantity)
	for _, r := range rs {
		totals[r.Ticker] = totals[r.Ticker].Add(r.Shares)
	}
	result := make([]TickerShares, 0, len(totals))
	for ticker, shares := range totals {
		result = append(result, TickerShares{Ticker: ticker, Shares: shares})
	}
	slices.SortFunc(result, func(a, b TickerShares) int {
		return strings.Compare(a.Ticker, b.Ticker)
	})
	return result
}

// TickerDividend is the total net dividend received from one ticker.
type TickerDividend struct {
	Ticker string
	Total  Money
}

// DividendsByTicker sums the net dividends per ticker, sorted by ticker.
func (rs Records) DividendsByTicker() []TickerDividend {
	totals := make(map[string]Money)
	for _, r := range rs {
		totals[r.Ticker] = totals[r.Ticker].Add(r.NetDividend)
	}
	result := make([]TickerDividend, 0, len(totals))
	for ticker, total := range totals {
		result = append(result, TickerDividend{Ticker: ticker, Total: total})
	}
	slices.SortFunc(result, func(a, b TickerDividend) int {
		return strings.Compare(a.Ticker, b.Ticker)
	})
	return result
}

// TickerWeight is the share of one ticker in the total dividend income.
type TickerWeight struct {
	Ticker string
	Total  Money
	Weight Percent
}

// Distribution computes each ticker's share of the total net dividend
// income, sorted by ticker. Weights are undefined when the total is zero.
func (rs Records) Distribution() []TickerWeight {
	byTicker := rs.DividendsByTicker()

	var total float64
	for _, d := range byTicker {
		total += d.Total.AsFloat()
	}

	weights := make([]TickerWeight, 0, len(byTicker))
	for _, d := range byTicker {
		w := Percent(math.NaN())
		if total != 0 {
			w = Percent(d.Total.AsFloat() / total * 100)
		}
		weights = append(weights, TickerWeight{Ticker: d.Ticker, Total: d.Total, Weight: w})
	}
	return weights
}

// InitialDividend returns the first positive net dividend recorded for a
// ticker, the seed for its growth projection. It reports false when the
// ticker has no usable dividend.
func (rs Records) InitialDividend(ticker string) (Money, bool) {
	for _, r := range rs {
		if r.Ticker == ticker && r.NetDividend.IsPositive() {
			return r.NetDividend, true
		}
	}
	return Money{}, false
}
