package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrNoApplicableRuleSet is reported when no document type recognizes a document.
	ErrNoApplicableRuleSet = errors.New("no applicable rule set")
	// ErrSectionMatchFailed is reported when a mandatory section does not match its region.
	ErrSectionMatchFailed = errors.New("section did not match")
	// ErrAmbiguousAlternation is reported when several alternatives match the same line.
	ErrAmbiguousAlternation = errors.New("ambiguous alternation")
)

// SectionError describes the failure of a section on a region.
type SectionError struct {
	Section string // position and attributes of the section in its template
	Region  Region // lines scanned, or matched when the assignment failed
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s (%s): %v", e.Section, e.Region, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }
