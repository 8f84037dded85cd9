package parser

import "fmt"

// Block cuts a document into regions starting at each line matching the start pattern.
type Block struct {
	start    pattern
	end      *pattern
	template *Template
	sealed   bool
}

// NewBlock returns a block starting at each line entirely matching start.
func NewBlock(start string) *Block {
	return &Block{start: wholeLine(start)}
}

func (b *Block) mustBeOpen() {
	if b.sealed {
		panic(fmt.Sprintf("parser: block %q modified after parser.New", b.start.expr))
	}
}

// EndsWith cuts each region after the first line matching end.
func (b *Block) EndsWith(end string) *Block {
	b.mustBeOpen()
	p := anywhere(end)
	b.end = &p
	return b
}

// Set sets the template run on each region.
func (b *Block) Set(t *Template) *Block {
	b.mustBeOpen()
	b.template = t
	return b
}

// String returns the start pattern.
func (b *Block) String() string { return b.start.expr }

func (b *Block) seal() {
	if b.template == nil {
		panic(fmt.Sprintf("parser: block %q has no template", b.start.expr))
	}
	b.template.seal()
	b.sealed = true
}

// regions returns the regions of lines.
// A region runs up to the next start line, or up to the end line when one is found before.
func (b *Block) regions(lines []string) []Region {
	var starts []int
	for i, line := range lines {
		if _, ok := b.start.match(line); ok {
			starts = append(starts, i)
		}
	}

	regions := make([]Region, 0, len(starts))
	for i, from := range starts {
		to := len(lines)
		if i+1 < len(starts) {
			to = starts[i+1]
		}
		if b.end != nil {
			for j := from + 1; j < to; j++ {
				if _, ok := b.end.match(lines[j]); ok {
					to = j + 1
					break
				}
			}
		}
		regions = append(regions, Region{From: from, To: to})
	}
	return regions
}
