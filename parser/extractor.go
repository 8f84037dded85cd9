package parser

import (
	"fmt"
	"strings"
)

// Extractor groups the document types of one vendor.
type Extractor struct {
	name        string
	identifiers []string
	types       []*DocumentType
	sealed      bool
}

// NewExtractor returns an extractor considered only for documents containing one of the
// identifiers. Without identifiers it is considered for every document.
func NewExtractor(name string, identifiers ...string) *Extractor {
	return &Extractor{name: name, identifiers: identifiers}
}

// Name returns the vendor label.
func (e *Extractor) Name() string { return e.name }

// Identifiers returns the bank identifiers.
func (e *Extractor) Identifiers() []string { return e.identifiers }

// DocumentTypes returns the document types in registration order.
func (e *Extractor) DocumentTypes() []*DocumentType { return e.types }

// AddDocumentType registers d.
func (e *Extractor) AddDocumentType(d *DocumentType) *Extractor {
	if e.sealed {
		panic(fmt.Sprintf("parser: extractor %q modified after parser.New", e.name))
	}
	e.types = append(e.types, d)
	return e
}

func (e *Extractor) seal() {
	for _, d := range e.types {
		d.seal()
	}
	e.sealed = true
}

// applies reports whether the document mentions one of the bank identifiers.
func (e *Extractor) applies(lines []string) bool {
	if len(e.identifiers) == 0 {
		return true
	}
	for _, line := range lines {
		for _, id := range e.identifiers {
			if strings.Contains(line, id) {
				return true
			}
		}
	}
	return false
}
