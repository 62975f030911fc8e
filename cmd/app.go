// Package cmd implements the CLI application behind the divi dividend
// dashboard.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dividash"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "dashboard")
	c.Register(&distributionCmd{}, "dashboard")

	c.Register(&dripCmd{}, "projections")
	c.Register(&projectCmd{}, "projections")

	c.Register(&importCmd{}, "data")
	c.Register(&fmtCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data-file", "dividends.tsv", "Path to the dividend data file (tab-separated)")

// DecodeRecords loads the dividend records from the app data file.
func DecodeRecords() (dividash.Records, error) {
	f, err := os.Open(*dataFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open data file %q: %w", *dataFile, err)
	}
	defer f.Close()

	records, err := dividash.DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read data file %q: %w", *dataFile, err)
	}
	return records, nil
}

// EncodeRecords writes the dividend records back into the app data file in
// canonical form.
func EncodeRecords(records dividash.Records) error {
	f, err := os.Create(*dataFile)
	if err != nil {
		return fmt.Errorf("cannot write data file %q: %w", *dataFile, err)
	}
	defer f.Close()
	return dividash.EncodeRecords(f, records)
}
