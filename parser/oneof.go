package parser

import (
	"fmt"
	"strings"

	"github.com/etnz/pdfimport"
)

// oneOf is an ordered group of alternative sections, the first one matching wins.
type oneOf struct {
	id         string
	candidates []*Section
	optional   bool
}

func (o *oneOf) seal(id string) {
	if len(o.candidates) == 0 {
		panic(fmt.Sprintf("parser: alternation %q has no candidate", id))
	}
	for i, c := range o.candidates {
		c.seal(fmt.Sprintf("%s.%d[%s]", id, i, strings.Join(c.attrs, ",")))
	}
	o.id = id
}

func (o *oneOf) String() string { return o.id }

func (o *oneOf) apply(x *execution, t *pdfimport.Transaction) error {
	for i, c := range o.candidates {
		values, first, last, ok := c.match(x.lines, x.region)
		if !ok {
			continue
		}
		if x.checkAlternation {
			o.probe(x, i, first)
		}
		return c.commit(x, t, values, Region{From: first, To: last + 1})
	}
	if o.optional {
		return nil
	}
	return &SectionError{Section: o.id, Region: x.region, Err: ErrSectionMatchFailed}
}

// probe warns about later candidates matching the same first line as the winner.
func (o *oneOf) probe(x *execution, winner, line int) {
	for _, c := range o.candidates[winner+1:] {
		if _, first, _, ok := c.match(x.lines, x.region); ok && first == line {
			x.warn(Warning{
				Section: o.id,
				Line:    line,
				Err:     fmt.Errorf("%w: %s and %s both match %q", ErrAmbiguousAlternation, o.candidates[winner].id, c.id, x.lines[line]),
			})
		}
	}
}
