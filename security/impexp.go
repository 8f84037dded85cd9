package security

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/pdfimport"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and be easy to merge.

// Import securities from 'r' in the import/export format.
//
// The format is JSONL: one json object per line, with properties "name", "isin", "wkn" and
// "currency", empty ones omitted.
func (m *Memory) Import(r io.Reader) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var s pdfimport.Security
		if err := json.Unmarshal(line, &s); err != nil {
			return fmt.Errorf("format error on line %d: %w", i, err)
		}
		q := pdfimport.SecurityQuery{Name: s.Name, ISIN: s.ISIN, WKN: s.WKN, Currency: s.Currency}
		if err := q.Validate(); err != nil {
			return fmt.Errorf("format error on line %d: %w", i, err)
		}
		if err := m.add(&s); err != nil {
			return fmt.Errorf("format error on line %d: %w", i, err)
		}
	}
	return scanner.Err()
}

// Export securities to 'w' in the import/export format, in creation order.
func (m *Memory) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range m.All() {
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("cannot export security %q: %w", s.String(), err)
		}
		bw.Write(data)
		bw.WriteString("\n")
	}
	return bw.Flush()
}
