package dividash

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned by Simulate when the simulation input is
// malformed. The caller must not proceed with partial results.
var ErrInvalidInput = errors.New("invalid simulation input")

// floorPrice is the small positive clamp applied to a share price that would
// otherwise compound to zero or below, so reinvestment never divides by zero.
const floorPrice = 0.01

// SimulationInput holds the parameters of one DRIP simulation run. A run is
// a pure function of this value: there is no ambient state.
type SimulationInput struct {
	InitialShares  float64 // shares held when the simulation starts, > 0
	SharePrice     float64 // share price when the simulation starts
	AnnualDividend float64 // dividend per share over one year
	DividendGrowth Percent // yearly growth of the dividend rate, may be negative
	PriceGrowth    Percent // yearly growth of the share price, may be negative
	Years          int     // full years to simulate beyond year 0
	Frequency      int     // dividend payments per year (1, 2, 4, 12), >= 1
}

// Validate reports whether the input describes a runnable simulation.
func (in SimulationInput) Validate() error {
	if in.InitialShares <= 0 {
		return fmt.Errorf("%w: initial shares must be positive, got %g", ErrInvalidInput, in.InitialShares)
	}
	if in.Frequency < 1 {
		return fmt.Errorf("%w: payment frequency must be at least 1, got %d", ErrInvalidInput, in.Frequency)
	}
	if in.Years < 0 {
		return fmt.Errorf("%w: projection years must not be negative, got %d", ErrInvalidInput, in.Years)
	}
	return nil
}

// YearRecord is the state of the simulated position at the end of one year.
// Records are emitted in year order and never mutated afterwards.
type YearRecord struct {
	Year                     int     // sequential index, starting at 0
	Shares                   float64 // total shares held, after all reinvestment
	SharesAdded              float64 // shares purchased via reinvestment this year
	SharePrice               float64 // share price at the end of the year
	AnnualDividend           float64 // per-share dividend rate in effect this year
	DividendIncome           float64 // sum of the cash dividends paid this year
	PortfolioValue           float64 // Shares * SharePrice
	ValueWithoutReinvestment float64 // initial shares held flat, at SharePrice
	ReinvestmentBenefit      float64 // PortfolioValue - ValueWithoutReinvestment
}

// Simulate runs a DRIP projection and returns one YearRecord per simulated
// year, Years+1 in total. Year 0 already runs a full year of reinvestment.
//
// Within a year the dividend is paid in Frequency equal installments. Each
// payment is valued at the price prevailing at the midpoint of its
// sub-period, obtained by compounding the start-of-year price by the annual
// growth factor raised to the fractional position. The carried price state
// only advances once per year by the exact annual factor, so the sub-year
// approximation never drifts across years. Prices are clamped to floorPrice,
// never an error, even when the growth rate drives them to zero or below.
func Simulate(in SimulationInput) ([]YearRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	shares := in.InitialShares
	price := math.Max(in.SharePrice, floorPrice)
	dividend := in.AnnualDividend

	// A factor below zero (rates under -100%) would make the fractional
	// power undefined; the price is on its way to the floor anyway.
	growth := math.Max(in.PriceGrowth.Factor(), 0)

	records := make([]YearRecord, 0, in.Years+1)
	for year := 0; year <= in.Years; year++ {
		perPayment := dividend / float64(in.Frequency)

		var added, income float64
		for p := 0; p < in.Frequency; p++ {
			fraction := (float64(p) + 0.5) / float64(in.Frequency)
			at := math.Max(price*math.Pow(growth, fraction), floorPrice)

			// Shares reinvested by earlier payments this year earn too.
			payment := shares * perPayment
			bought := payment / at
			added += bought
			shares += bought
			income += payment
		}

		// Full-year compounding, independent of the sub-year interpolation.
		endPrice := math.Max(price*growth, floorPrice)
		value := shares * endPrice
		baseline := in.InitialShares * endPrice

		records = append(records, YearRecord{
			Year:                     year,
			Shares:                   shares,
			SharesAdded:              added,
			SharePrice:               endPrice,
			AnnualDividend:           dividend,
			DividendIncome:           income,
			PortfolioValue:           value,
			ValueWithoutReinvestment: baseline,
			ReinvestmentBenefit:      value - baseline,
		})

		price = endPrice
		// A dividend cannot go negative, whatever the growth rate says.
		dividend = math.Max(dividend*in.DividendGrowth.Factor(), 0)
	}
	return records, nil
}
