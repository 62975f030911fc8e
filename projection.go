package dividash

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// ProjectedDividend is one year of the simple, no-reinvestment dividend
// projection.
type ProjectedDividend struct {
	Year     int // calendar year
	Dividend float64
}

// ProjectDividends projects a dividend stream by a fixed yearly growth rate,
// without reinvestment. It returns one entry per year starting at startYear,
// the first one being the initial dividend itself.
func ProjectDividends(initial float64, growth Percent, startYear, years int) []ProjectedDividend {
	if years <= 0 {
		return nil
	}
	projected := make([]ProjectedDividend, 0, years)
	dividend := initial
	for i := 0; i < years; i++ {
		projected = append(projected, ProjectedDividend{Year: startYear + i, Dividend: dividend})
		dividend *= growth.Factor()
	}
	return projected
}

// currencyByCountry maps a ticker country suffix to its trading currency.
var currencyByCountry = map[string]string{
	"PL": "PLN",
	"US": "USD",
	"EU": "EUR",
}

// CurrencyFor returns the display currency for a ticker based on its country
// suffix ("CDR.PL" trades in PLN). Tickers with no suffix, or with an
// unknown one, default to USD.
func CurrencyFor(ticker string) *money.Currency {
	code := "USD"
	if i := strings.LastIndex(ticker, "."); i >= 0 {
		if c, ok := currencyByCountry[ticker[i+1:]]; ok {
			code = c
		}
	}
	return money.GetCurrency(code)
}
