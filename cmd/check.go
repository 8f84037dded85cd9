package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/pdfimport/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct {
	raw bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "reports how the rules apply to documents" }
func (*checkCmd) Usage() string {
	return `pdfx check [-raw] <file.txt>...

  Prints, for each document, the rule sets that apply, the regions found by each block,
  the failed and discarded regions, and ambiguous alternations.
  Exits with failure if a document is not recognized or a region failed.

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print markdown source instead of rendering it")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing documents")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg.AlternationCheck = true
	ctx, log, err := newLogger(ctx, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// securities found while checking are not kept.
	resolver, closeSecurities, err := openSecurities("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeSecurities()
	p, err := newParser(cfg, resolver, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	results, err := parseFiles(ctx, p, f.Args(), cfg.Workers, cfg.Timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("# Diagnostics\n\n")
	ok := true
	for _, res := range results {
		b.WriteString(renderer.DiagnosticsMarkdown(res))
		b.WriteString("\n")
		ok = ok && res.Diagnostics.OK()
	}
	if err := printMarkdown(os.Stdout, b.String(), !c.raw); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
