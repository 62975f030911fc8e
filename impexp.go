package dividash

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file imports dividend records from broker JSON exports. Every broker
// shapes its export differently, so an ImportProfile maps the shape to the
// record fields with jsonpath expressions.

// ImportProfile describes where to find the dividend rows and their fields
// inside a broker JSON export. Rows selects the list of dividend objects;
// the field paths are evaluated against each row.
type ImportProfile struct {
	Rows   string `json:"rows"`
	Ticker string `json:"ticker"`
	Amount string `json:"amount"`
	Tax    string `json:"tax"`
	Shares string `json:"shares"`
}

// DefaultImportProfile matches the generic export shape
// {"dividends": [{"ticker": ..., "amount": ..., "tax": ..., "shares": ...}]}.
var DefaultImportProfile = ImportProfile{
	Rows:   "$.dividends[*]",
	Ticker: "$.ticker",
	Amount: "$.amount",
	Tax:    "$.tax",
	Shares: "$.shares",
}

// ImportRecords reads a broker JSON export from 'r' and converts it into
// dividend records using the given profile.
func ImportRecords(r io.Reader, profile ImportProfile) (Records, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse broker export: %w", err)
	}

	jrows, err := jsonpath.Get(profile.Rows, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select dividend rows %q: %w", profile.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		// a single matching object is a list of one
		rows = []any{jrows}
	}

	var records Records
	for i, row := range rows {
		ticker, err := stringAt(profile.Ticker, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		amount, err := floatAt(profile.Amount, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		tax, err := floatAt(profile.Tax, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		shares, err := floatAt(profile.Shares, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		records = append(records, Record{
			Ticker:       ticker,
			Shares:       Q(shares),
			NetDividend:  M(amount, CurrencyFor(ticker).Code),
			TaxCollected: Percent(tax),
		})
	}
	return records, nil
}

// valueAt evaluates a jsonpath expression on a row, keeping the first answer
// when the library returns a list of one.
func valueAt(path string, row any) (any, error) {
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func stringAt(path string, row any) (string, error) {
	jval, err := valueAt(path, row)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, jval)
	}
	return s, nil
}

func floatAt(path string, row any) (float64, error) {
	jval, err := valueAt(path, row)
	if err != nil {
		return 0, err
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		// some brokers export numbers as strings, with suffixes like
		// "1.23 USD" or "15%"
		v, _, _ = strings.Cut(v, " ")
		v = strings.TrimSuffix(v, "%")
		v = strings.ReplaceAll(v, ",", ".")
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number: %w", path, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%q is not a number: %v", path, jval)
	}
}
