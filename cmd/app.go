// Package cmd implements the pdfx CLI application to extract transactions from bank documents.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/config"
	"github.com/etnz/pdfimport/logger"
	"github.com/etnz/pdfimport/parser"
	"github.com/etnz/pdfimport/sbroker"
	"github.com/etnz/pdfimport/security"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&extractCmd{}, "documents")
	c.Register(&checkCmd{}, "documents")
	c.Register(&vendorsCmd{}, "rules")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML configuration file, defaults to $"+config.EnvConfigFile)

// loadConfig loads the configuration file named by -config or PDFX_CONFIG.
func loadConfig() (*config.Config, error) { return config.LoadDefault(*configFile) }

// newLogger returns the console logger for level, and ctx carrying it.
func newLogger(ctx context.Context, level string) (context.Context, zerolog.Logger, error) {
	l, err := logger.ParseLevel(level)
	if err != nil {
		return ctx, zerolog.Nop(), err
	}
	log := logger.New(os.Stderr, l)
	return logger.WithContext(ctx, log), log, nil
}

// Vendors returns all the extractors, resolving securities with r.
func Vendors(r pdfimport.Resolver) []*parser.Extractor {
	return []*parser.Extractor{
		sbroker.New(r),
	}
}

// selectVendors keeps the extractors named in names, all of them if names is empty.
func selectVendors(all []*parser.Extractor, names []string) ([]*parser.Extractor, error) {
	if len(names) == 0 {
		return all, nil
	}
	var selected []*parser.Extractor
	for _, name := range names {
		i := slices.IndexFunc(all, func(e *parser.Extractor) bool { return strings.EqualFold(e.Name(), name) })
		if i < 0 {
			return nil, fmt.Errorf("unknown vendor %q", name)
		}
		selected = append(selected, all[i])
	}
	return selected, nil
}

// newParser builds the parser for the configured vendors.
func newParser(cfg *config.Config, r pdfimport.Resolver, log zerolog.Logger) (*parser.Parser, error) {
	extractors, err := selectVendors(Vendors(r), cfg.Vendors)
	if err != nil {
		return nil, err
	}
	return parser.New(extractors,
		parser.WithLogger(log),
		parser.WithAlternationCheck(cfg.AlternationCheck),
	), nil
}

// openSecurities opens the securities store at path.
//
// A ".db" path is a sqlite database, any other path a JSONL file saved back by the returned
// close function. Without path, securities are only shared for the duration of the command.
func openSecurities(path string) (pdfimport.Resolver, func() error, error) {
	switch {
	case path == "":
		return security.NewMemory(), func() error { return nil }, nil
	case strings.HasSuffix(path, ".db"):
		db, err := security.OpenSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open securities database %q: %w", path, err)
		}
		return db, db.Close, nil
	default:
		m, err := security.Load(path)
		if err != nil {
			return nil, nil, err
		}
		return m, func() error { return m.Persist(path) }, nil
	}
}
