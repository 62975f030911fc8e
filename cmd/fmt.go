package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the data file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `divi fmt

  Validates and formats the data file. This command reads all dividend
  records, validates them, and writes them back in the canonical
  tab-separated format: explicit currency codes on amounts and explicit
  '%' on taxes.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := DecodeRecords()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeRecords(records); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted data file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %d records.\n", len(records))
	return subcommands.ExitSuccess
}
