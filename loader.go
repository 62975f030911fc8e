package dividash

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// this file handles the dividend data file: a tab-separated table with a
// header line. It should remain human readable, single file and easy to
// export from any broker's dividend statement.

// The columns a data file must provide. Extra columns are ignored.
const (
	colTicker   = "Ticker"
	colDividend = "Net Dividend"
	colTax      = "Tax Collected"
	colShares   = "Shares"
)

// DecodeRecords reads a tab-separated dividend table from 'r'.
//
// The first non-empty line is the header; column names are matched after
// trimming whitespace. "Net Dividend" values may carry a trailing currency
// code ("1.23 USD"); without one, the currency is derived from the ticker's
// country suffix. "Tax Collected" values may carry a trailing '%'.
func DecodeRecords(r io.Reader) (Records, error) {
	scanner := bufio.NewScanner(r)

	var columns map[string]int
	var records Records
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, "\t")

		if columns == nil {
			// header line
			columns = make(map[string]int, len(fields))
			for i, name := range fields {
				columns[strings.TrimSpace(name)] = i
			}
			var missing []string
			for _, required := range []string{colTicker, colDividend, colTax, colShares} {
				if _, ok := columns[required]; !ok {
					missing = append(missing, required)
				}
			}
			if len(missing) > 0 {
				return nil, fmt.Errorf("data file is missing required columns: %s", strings.Join(missing, ", "))
			}
			continue
		}

		record, err := parseRecord(fields, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read data file: %w", err)
	}
	if columns == nil {
		return nil, fmt.Errorf("data file is empty")
	}
	return records, nil
}

func parseRecord(fields []string, columns map[string]int) (Record, error) {
	cell := func(name string) (string, error) {
		i := columns[name]
		if i >= len(fields) {
			return "", fmt.Errorf("missing %q value", name)
		}
		return strings.TrimSpace(fields[i]), nil
	}

	var record Record
	var err error
	if record.Ticker, err = cell(colTicker); err != nil {
		return record, err
	}
	if record.Ticker == "" {
		return record, fmt.Errorf("empty %q value", colTicker)
	}

	raw, err := cell(colDividend)
	if err != nil {
		return record, err
	}
	if record.NetDividend, err = parseAmount(raw, record.Ticker); err != nil {
		return record, fmt.Errorf("invalid %q value %q: %w", colDividend, raw, err)
	}

	if raw, err = cell(colTax); err != nil {
		return record, err
	}
	tax, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil {
		return record, fmt.Errorf("invalid %q value %q: %w", colTax, raw, err)
	}
	record.TaxCollected = Percent(tax)

	if raw, err = cell(colShares); err != nil {
		return record, err
	}
	shares, err := decimal.NewFromString(raw)
	if err != nil {
		return record, fmt.Errorf("invalid %q value %q: %w", colShares, raw, err)
	}
	record.Shares = Q(shares)

	return record, nil
}

// parseAmount parses a monetary cell like "1.23 USD" or "1.23". Without an
// explicit currency code the ticker's country currency applies.
func parseAmount(raw, ticker string) (Money, error) {
	currency := CurrencyFor(ticker).Code
	if amount, code, found := strings.Cut(raw, " "); found {
		raw = amount
		currency = strings.TrimSpace(code)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, err
	}
	return M(value, currency), nil
}

// EncodeRecords writes the dividend table to 'w' in its canonical form: the
// four required columns, tab-separated, amounts with an explicit currency
// code and taxes with an explicit '%'.
func EncodeRecords(w io.Writer, records Records) error {
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", colTicker, colDividend, colTax, colShares); err != nil {
		return err
	}
	for _, r := range records {
		_, err := fmt.Fprintf(w, "%s\t%s %s\t%g%%\t%s\n",
			r.Ticker,
			r.NetDividend.value, r.NetDividend.Currency(),
			float64(r.TaxCollected),
			r.Shares,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
