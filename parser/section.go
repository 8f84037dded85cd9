package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/etnz/pdfimport"
)

// Assignment applies the values captured by a section to the transaction under construction.
type Assignment func(t *pdfimport.Transaction, v Values, ctx *Context) error

// pattern is a compiled section pattern.
type pattern struct {
	expr string
	re   *regexp.Regexp
}

// match returns the named groups that took part in the match.
func (p pattern) match(line string) (map[string]string, bool) {
	idx := p.re.FindStringSubmatchIndex(line)
	if idx == nil {
		return nil, false
	}
	captures := make(map[string]string)
	for i, name := range p.re.SubexpNames() {
		if name == "" || idx[2*i] < 0 {
			continue
		}
		captures[name] = line[idx[2*i]:idx[2*i+1]]
	}
	return captures, true
}

// wholeLine compiles expr so that it must match the entire line.
func wholeLine(expr string) pattern {
	return pattern{expr: expr, re: regexp.MustCompile(`^(?:` + expr + `)$`)}
}

// anywhere compiles expr so that it may match any part of the line.
func anywhere(expr string) pattern {
	return pattern{expr: expr, re: regexp.MustCompile(expr)}
}

// Section captures named values from consecutive matches in a region.
//
// Patterns are searched in order, each one on the lines following the previous match.
// All declared attributes must be captured for the section to match.
type Section struct {
	id       string
	attrs    []string
	optional bool
	patterns []pattern
	assign   Assignment
	sealed   bool
}

// NewSection returns a mandatory section declaring attrs.
// It is used for alternation candidates, see Template.OneOf.
func NewSection(attrs ...string) *Section {
	return &Section{attrs: attrs, id: strings.Join(attrs, ",")}
}

func (s *Section) mustBeOpen() {
	if s.sealed {
		panic(fmt.Sprintf("parser: section %q modified after parser.New", s.id))
	}
}

// Optional makes the section optional: when it does not match, nothing happens.
func (s *Section) Optional() *Section {
	s.mustBeOpen()
	s.optional = true
	return s
}

// Match adds a pattern that must match a whole line.
func (s *Section) Match(expr string) *Section {
	s.mustBeOpen()
	s.patterns = append(s.patterns, wholeLine(expr))
	return s
}

// Find adds a pattern that may match any part of a line.
func (s *Section) Find(expr string) *Section {
	s.mustBeOpen()
	s.patterns = append(s.patterns, anywhere(expr))
	return s
}

// Assign sets the function applied to the captured values.
func (s *Section) Assign(fn Assignment) *Section {
	s.mustBeOpen()
	s.assign = fn
	return s
}

// String returns the section identity: its position in the template and its attributes.
func (s *Section) String() string { return s.id }

// seal validates and freezes the section.
func (s *Section) seal(id string) {
	if len(s.patterns) == 0 {
		panic(fmt.Sprintf("parser: section %q has no pattern", id))
	}
	s.id = id
	s.sealed = true
}

// match runs the section over region r, it returns the captured values and the lines of the
// first and last match.
func (s *Section) match(lines []string, r Region) (Values, int, int, bool) {
	c := newCursor(lines, r)
	values := make(Values)
	first, last := -1, -1
	for _, p := range s.patterns {
		i, captures, ok := c.next(p)
		if !ok {
			return nil, -1, -1, false
		}
		if first < 0 {
			first = i
		}
		last = i
		for k, v := range captures {
			values[k] = v
		}
	}
	for _, attr := range s.attrs {
		if _, ok := values[attr]; !ok {
			return nil, -1, -1, false
		}
	}
	return values, first, last, true
}

// apply runs the section on one region, and assigns values to t.
func (s *Section) apply(x *execution, t *pdfimport.Transaction) error {
	values, first, last, ok := s.match(x.lines, x.region)
	if !ok {
		if s.optional {
			return nil
		}
		return &SectionError{Section: s.id, Region: x.region, Err: ErrSectionMatchFailed}
	}
	return s.commit(x, t, values, Region{From: first, To: last + 1})
}

// commit calls the assignment for matched values.
func (s *Section) commit(x *execution, t *pdfimport.Transaction, values Values, matched Region) error {
	if s.assign == nil {
		return nil
	}
	if err := s.assign(t, values, x.ctx); err != nil {
		return &SectionError{Section: s.id, Region: matched, Err: err}
	}
	return nil
}
