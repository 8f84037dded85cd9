package parser

import (
	"fmt"

	"github.com/etnz/pdfimport"
	"github.com/google/uuid"
)

// Result is the outcome of parsing one document.
type Result struct {
	RunID       uuid.UUID
	Document    string
	Items       []*pdfimport.Transaction
	Diagnostics Diagnostics
}

// Err returns an error wrapping ErrNoApplicableRuleSet when the document was not recognized.
// Section failures are not errors, they are listed in the Diagnostics.
func (r *Result) Err() error {
	if len(r.Diagnostics.RuleSets) == 0 {
		return fmt.Errorf("%s: %w", r.Document, ErrNoApplicableRuleSet)
	}
	return nil
}

// Diagnostics describes how the rule sets were applied to a document.
type Diagnostics struct {
	RuleSets []string      // applicable document types, as "vendor/type"
	Regions  []RegionCount // regions found per block
	Failures []Failure     // aborted template runs
	Discards []Discard     // runs that produced no transaction
	Warnings []Warning
}

// RegionCount is the number of regions a block found.
type RegionCount struct {
	RuleSet string
	Block   string
	Count   int
}

// Failure is a template run aborted by a section.
type Failure struct {
	RuleSet string
	Block   string
	Region  Region
	Err     error
}

// Discard is a template run completed without transaction.
type Discard struct {
	RuleSet string
	Block   string
	Region  Region
	Reason  string
}

// Warning is a non fatal finding, like an ambiguous alternation.
type Warning struct {
	RuleSet string
	Block   string
	Section string
	Line    int
	Err     error
}

// OK reports whether the document was recognized and no template run failed.
func (d Diagnostics) OK() bool {
	return len(d.RuleSets) > 0 && len(d.Failures) == 0
}
