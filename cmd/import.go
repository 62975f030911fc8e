package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/dividash"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input   string
	profile string
	write   bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "convert a broker JSON export into the data file format" }
func (*importCmd) Usage() string {
	return `divi import [-in <export.json>] [-profile <profile.json>] [-w]

  Converts a broker JSON export into the canonical tab-separated data file
  format, on stdout by default. With -w the records are appended to the
  data file instead.

  A profile file maps the export's shape to the record fields with jsonpath
  expressions; the default profile expects
  {"dividends": [{"ticker": ..., "amount": ..., "tax": ..., "shares": ...}]}.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "in", "-", "Broker export to read, '-' for stdin.")
	f.StringVar(&c.profile, "profile", "", "Import profile file. Defaults to the generic profile.")
	f.BoolVar(&c.write, "w", false, "Append the imported records to the data file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile := dividash.DefaultImportProfile
	if c.profile != "" {
		content, err := os.ReadFile(c.profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading profile %q: %v\n", c.profile, err)
			return subcommands.ExitFailure
		}
		if err := json.Unmarshal(content, &profile); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing profile %q: %v\n", c.profile, err)
			return subcommands.ExitFailure
		}
	}

	var in io.Reader = os.Stdin
	if c.input != "-" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening export %q: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	imported, err := dividash.ImportRecords(in, profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing export: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.write {
		if err := dividash.EncodeRecords(os.Stdout, imported); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing records: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	// merge with the existing data file; a missing one is fine on first import
	records, err := DecodeRecords()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	records = append(records, imported...)

	if err := EncodeRecords(records); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully imported %d records into %s\n", len(imported), *dataFile)
	return subcommands.ExitSuccess
}
