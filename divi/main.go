package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dividash/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the divi command line for shell completion. It is a
// no-op outside of a completion request.
func completion() {
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-file": predict.Files("*.tsv"),
		},
		Sub: map[string]*complete.Command{
			"summary":      {},
			"distribution": {},
			"drip":         {},
			"project":      {},
			"import":       {Flags: map[string]complete.Predictor{"in": predict.Files("*.json"), "profile": predict.Files("*.json")}},
			"fmt":          {},
			"topic":        {Args: predict.Set{"readme", "data", "drip", "projection"}},
			"assist":       {},
		},
	}
	c.Complete("divi")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
