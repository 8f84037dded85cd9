package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/etnz/pdfimport"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Parser applies a sealed set of extractors to documents.
// It is safe for concurrent use.
type Parser struct {
	extractors       []*Extractor
	log              zerolog.Logger
	checkAlternation bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger, the default is zerolog.Nop().
func WithLogger(log zerolog.Logger) Option { return func(p *Parser) { p.log = log } }

// WithAlternationCheck enables the detection of ambiguous alternations.
// Every candidate of each alternation is then tried, which is slower.
func WithAlternationCheck(enabled bool) Option {
	return func(p *Parser) { p.checkAlternation = enabled }
}

// New seals the extractors and returns a Parser using them.
// Modifying an extractor, or any of its parts, after this call panics.
func New(extractors []*Extractor, opts ...Option) *Parser {
	p := &Parser{extractors: extractors, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	for _, e := range extractors {
		e.seal()
	}
	return p
}

// Extractors returns the registered extractors.
func (p *Parser) Extractors() []*Extractor { return p.extractors }

// execution is the state of one template run.
type execution struct {
	lines            []string
	region           Region
	ctx              *Context
	checkAlternation bool
	warnings         []Warning
}

func (x *execution) warn(w Warning) { x.warnings = append(x.warnings, w) }

// ParseReader reads the lines of a document from r, and parses them.
func (p *Parser) ParseReader(name string, r io.Reader) (*Result, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", name, err)
	}
	return p.Parse(name, lines), nil
}

// Parse extracts the transactions of the document made of lines.
// name identifies the document in diagnostics and logs.
func (p *Parser) Parse(name string, lines []string) *Result {
	res := &Result{RunID: uuid.New(), Document: name}
	log := p.log.With().Str("document", name).Str("run", res.RunID.String()).Logger()

	for _, e := range p.extractors {
		if !e.applies(lines) {
			continue
		}
		for _, d := range e.types {
			if !d.applies(lines) {
				continue
			}
			ruleSet := e.name + "/" + d.name
			res.Diagnostics.RuleSets = append(res.Diagnostics.RuleSets, ruleSet)
			log.Debug().Str("rule_set", ruleSet).Msg("document type applies")
			p.parseType(res, ruleSet, d, lines, log.With().Str("rule_set", ruleSet).Logger())
		}
	}

	if len(res.Diagnostics.RuleSets) == 0 {
		log.Debug().Int("lines", len(lines)).Msg("no applicable rule set")
	}
	return res
}

// parseType runs the blocks of d with a fresh context.
func (p *Parser) parseType(res *Result, ruleSet string, d *DocumentType, lines []string, log zerolog.Logger) {
	ctx := NewContext(log)
	for _, b := range d.blocks {
		regions := b.regions(lines)
		res.Diagnostics.Regions = append(res.Diagnostics.Regions, RegionCount{RuleSet: ruleSet, Block: b.String(), Count: len(regions)})
		for _, r := range regions {
			x := &execution{lines: lines, region: r, ctx: ctx, checkAlternation: p.checkAlternation}
			tx, err := b.template.run(x)
			for _, w := range x.warnings {
				w.RuleSet, w.Block = ruleSet, b.String()
				res.Diagnostics.Warnings = append(res.Diagnostics.Warnings, w)
				log.Warn().Err(w.Err).Str("section", w.Section).Int("line", w.Line+1).Msg("ambiguous alternation")
			}

			var discarded errDiscarded
			switch {
			case errors.As(err, &discarded):
				res.Diagnostics.Discards = append(res.Diagnostics.Discards, Discard{RuleSet: ruleSet, Block: b.String(), Region: r, Reason: discarded.reason})
				log.Debug().Stringer("region", r).Str("reason", discarded.reason).Msg("discarded")
			case err != nil:
				res.Diagnostics.Failures = append(res.Diagnostics.Failures, Failure{RuleSet: ruleSet, Block: b.String(), Region: r, Err: err})
				log.Debug().Err(err).Stringer("region", r).Msg("template run failed")
			default:
				res.Items = append(res.Items, tx)
			}
		}
	}
}

// Extract is a convenience to parse a document and return only its transactions.
func (p *Parser) Extract(name string, lines []string) ([]*pdfimport.Transaction, error) {
	res := p.Parse(name, lines)
	return res.Items, res.Err()
}
