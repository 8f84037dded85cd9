package parser

import (
	"fmt"
	"regexp"
)

// DocumentType is a rule set: markers recognize the layout, blocks extract its transactions.
type DocumentType struct {
	name    string
	markers []*regexp.Regexp
	blocks  []*Block
	sealed  bool
}

// NewDocumentType returns a document type applicable when any marker is found in any line.
func NewDocumentType(name string, markers ...string) *DocumentType {
	d := &DocumentType{name: name}
	for _, m := range markers {
		d.markers = append(d.markers, regexp.MustCompile(m))
	}
	return d
}

// Name returns the document type name.
func (d *DocumentType) Name() string { return d.name }

// AddBlock appends a block, blocks run in the order they were added.
func (d *DocumentType) AddBlock(b *Block) *DocumentType {
	if d.sealed {
		panic(fmt.Sprintf("parser: document type %q modified after parser.New", d.name))
	}
	d.blocks = append(d.blocks, b)
	return d
}

// Blocks returns the start pattern of each block.
func (d *DocumentType) Blocks() []string {
	names := make([]string, len(d.blocks))
	for i, b := range d.blocks {
		names[i] = b.String()
	}
	return names
}

func (d *DocumentType) seal() {
	if len(d.markers) == 0 {
		panic(fmt.Sprintf("parser: document type %q has no marker", d.name))
	}
	for _, b := range d.blocks {
		b.seal()
	}
	d.sealed = true
}

// applies reports whether a marker is found in lines.
func (d *DocumentType) applies(lines []string) bool {
	for _, line := range lines {
		for _, m := range d.markers {
			if m.MatchString(line) {
				return true
			}
		}
	}
	return false
}
