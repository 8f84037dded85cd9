package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pdfimport/renderer"
	"github.com/google/subcommands"
)

type vendorsCmd struct {
	raw bool
}

func (*vendorsCmd) Name() string     { return "vendors" }
func (*vendorsCmd) Synopsis() string { return "lists the supported banks and document types" }
func (*vendorsCmd) Usage() string {
	return `pdfx vendors [-raw]

  Lists the supported banks, the text identifying them, their document types and blocks.

`
}

func (c *vendorsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print markdown source instead of rendering it")
}

func (c *vendorsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := printMarkdown(os.Stdout, renderer.VendorsMarkdown(Vendors(nil)), !c.raw); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
