package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/assist"
	"github.com/etnz/pdfimport/config"
	"github.com/etnz/pdfimport/export"
	"github.com/etnz/pdfimport/logger"
	"github.com/etnz/pdfimport/parser"
	"github.com/etnz/pdfimport/renderer"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type extractCmd struct {
	format     string
	output     string
	workers    int
	timeout    time.Duration
	securities string
	assist     bool
	logLevel   string
}

func (*extractCmd) Name() string { return "extract" }
func (*extractCmd) Synopsis() string {
	return "extracts the transactions of bank documents converted to text"
}
func (*extractCmd) Usage() string {
	return `pdfx extract [-f jsonl|markdown|xlsx] [-o <file>] [-j <workers>] [-timeout <duration>] [-securities <path>] [-assist] <file.txt>...

  Extracts the transactions of each document, and writes them all in the output.
  Documents are text files, as produced by pdftotext -layout.
  Unrecognized documents and failed sections are reported on stderr.

Usage Examples:
# Prints the transactions as JSON lines.
$ pdfx extract statements/*.txt

# Writes a spreadsheet, and keeps the securities in a sqlite database.
$ pdfx extract -f xlsx -o transactions.xlsx -securities securities.db statements/*.txt

`
}

func (c *extractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "f", "", "Output format: jsonl, markdown or xlsx (default from config: jsonl)")
	f.StringVar(&c.output, "o", "-", "Output file, '-' is stdout")
	f.IntVar(&c.workers, "j", 0, "Number of documents parsed concurrently (default from config: 4)")
	f.DurationVar(&c.timeout, "timeout", 0, "Abandon pending documents after this duration")
	f.StringVar(&c.securities, "securities", "", "Securities store, a .jsonl file or a .db sqlite database")
	f.BoolVar(&c.assist, "assist", false, "Ask a Gemini model to draft rules for unrecognized documents")
	f.StringVar(&c.logLevel, "log", "", "Log level: debug, info, warn or error")
}

// config merges the flags that were set into the configuration file.
func (c *extractCmd) config() (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if c.format != "" {
		cfg.Format = c.format
	}
	if c.workers != 0 {
		cfg.Workers = c.workers
	}
	if c.timeout != 0 {
		cfg.Timeout = c.timeout
	}
	if c.securities != "" {
		cfg.Securities = c.securities
	}
	if c.assist {
		cfg.Assist.Enabled = true
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	return cfg, cfg.Validate()
}

func (c *extractCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing documents")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	cfg, err := c.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	ctx, log, err := newLogger(ctx, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	resolver, closeSecurities, err := openSecurities(cfg.Securities)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening securities: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := newParser(cfg, resolver, log)
	if err != nil {
		closeSecurities()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	results, err := parseFiles(ctx, p, f.Args(), cfg.Workers, cfg.Timeout)
	if cerr := closeSecurities(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	count := reportDiagnostics(os.Stderr, results)
	if cfg.Assist.Enabled {
		suggest(ctx, cfg.Assist, p, results)
	}

	if err := c.write(cfg.Format, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "-" {
		fmt.Fprintf(os.Stderr, "%d transaction(s) written to %s\n", count, c.output)
	}
	return subcommands.ExitSuccess
}

// write encodes results in format to the output file.
func (c *extractCmd) write(format string, results []*parser.Result) error {
	if c.output == "-" {
		return encode(os.Stdout, format, results, true)
	}
	f, err := os.Create(c.output)
	if err != nil {
		return err
	}
	return writeAndClose(f, func(w io.Writer) error { return encode(w, format, results, false) })
}

// writeAndClose writes to wc with fn, then closes it.
// The close error is returned when the write succeeded.
func writeAndClose(wc io.WriteCloser, fn func(w io.Writer) error) error {
	if err := fn(wc); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

// encode writes results to w in format.
func encode(w io.Writer, format string, results []*parser.Result, styled bool) error {
	switch format {
	case config.FormatMarkdown:
		return printMarkdown(w, renderer.TransactionsMarkdown(results), styled)
	case config.FormatXLSX:
		return export.WriteXLSX(w, results)
	default:
		for _, res := range results {
			if err := pdfimport.EncodeTransactions(w, res.Items); err != nil {
				return err
			}
		}
		return nil
	}
}

// parseFiles parses files with at most workers concurrent parses.
// Results are in the order of files.
func parseFiles(ctx context.Context, p *parser.Parser, files []string, workers int, timeout time.Duration) ([]*parser.Result, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	results := make([]*parser.Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s abandoned: %w", file, err)
			}
			res, err := parseFile(p, file)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseFile(p *parser.Parser, file string) (*parser.Result, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.ParseReader(file, f)
}

// reportDiagnostics prints unrecognized documents and failed sections, and returns the number
// of transactions.
func reportDiagnostics(w io.Writer, results []*parser.Result) int {
	count := 0
	for _, res := range results {
		count += len(res.Items)
		if err := res.Err(); err != nil {
			fmt.Fprintf(w, "Warning: %v\n", err)
			continue
		}
		for _, f := range res.Diagnostics.Failures {
			fmt.Fprintf(w, "Warning: %s: %s: %s: %v\n", res.Document, f.RuleSet, f.Region, f.Err)
		}
		for _, x := range res.Diagnostics.Warnings {
			fmt.Fprintf(w, "Warning: %s: %s: line %d: %v\n", res.Document, x.RuleSet, x.Line+1, x.Err)
		}
	}
	return count
}

// suggest prints drafted rules for each unrecognized document on stderr.
func suggest(ctx context.Context, cfg config.Assist, p *parser.Parser, results []*parser.Result) {
	log := logger.FromContext(ctx)
	a, err := assist.New(ctx, os.Getenv(cfg.APIKeyEnv), cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: assist disabled: %v (set $%s)\n", err, cfg.APIKeyEnv)
		return
	}
	for _, res := range results {
		if res.Err() == nil {
			continue
		}
		lines, err := readLines(res.Document)
		if err != nil {
			log.Warn().Err(err).Str("document", res.Document).Msg("cannot read document again")
			continue
		}
		s, err := a.Suggest(ctx, res.Document, lines, p.Extractors())
		if err != nil {
			log.Warn().Err(err).Str("document", res.Document).Msg("no suggestion")
			continue
		}
		printMarkdown(os.Stderr, s, false)
	}
}

func readLines(file string) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.ReadLines(f)
}
