package cmd

import (
	"flag"

	"github.com/etnz/pdfimport/config"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors completes the values of known flags, other flags take anything.
var flagPredictors = map[string]complete.Predictor{
	"f":          predict.Set{config.FormatJSONL, config.FormatMarkdown, config.FormatXLSX},
	"o":          predict.Files("*"),
	"securities": predict.Files("*"),
	"config":     predict.Files("*.yaml"),
	"log":        predict.Set{"debug", "info", "warn", "error"},
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

// Completion returns the shell completion of the commands registered in c.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		root.Sub[cmd.Name()] = &complete.Command{
			Flags: predictFlags(f),
			Args:  predict.Files("*.txt"),
		}
	})
	return root
}
