package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineLength is the longest line ReadLines accepts.
const maxLineLength = 1 << 20

// Region is the half-open range [From, To) of line indexes.
type Region struct {
	From, To int
}

// Len returns the number of lines in r.
func (r Region) Len() int { return r.To - r.From }

// String returns the 1-based inclusive range, the way editors show it.
func (r Region) String() string { return fmt.Sprintf("lines %d-%d", r.From+1, r.To) }

// ReadLines splits text into lines, trailing carriage returns are removed.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read lines: %w", err)
	}
	return lines, nil
}

// cursor reads the lines of a region forward.
type cursor struct {
	lines  []string
	region Region
	pos    int
}

func newCursor(lines []string, r Region) *cursor {
	return &cursor{lines: lines, region: r, pos: r.From}
}

// next returns the index of the next line matched by p, and moves past it.
func (c *cursor) next(p pattern) (int, map[string]string, bool) {
	for ; c.pos < c.region.To; c.pos++ {
		if m, ok := p.match(c.lines[c.pos]); ok {
			i := c.pos
			c.pos++
			return i, m, true
		}
	}
	return -1, nil, false
}
