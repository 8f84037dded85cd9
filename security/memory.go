// Package security resolves the securities mentioned in documents against a local store.
//
// Two stores are available: Memory, persisted as a human readable JSONL file, and SQLite.
// Both look a security up by ISIN, then by WKN, then by exact name, and create it when none
// matches.
package security

import (
	"fmt"
	"sync"

	"github.com/etnz/pdfimport"
)

// Memory holds securities in memory. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	content []*pdfimport.Security
}

// NewMemory returns a new empty store.
func NewMemory() *Memory { return &Memory{} }

// Len returns the number of securities.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.content)
}

// All returns a copy of the list of securities, in creation order.
func (m *Memory) All() []pdfimport.Security {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]pdfimport.Security, len(m.content))
	for i, s := range m.content {
		list[i] = *s
	}
	return list
}

// Add appends s, its ISIN must not be already known.
func (m *Memory) Add(s pdfimport.Security) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.add(&s)
}

func (m *Memory) add(s *pdfimport.Security) error {
	if s.ISIN != "" && m.lookup(pdfimport.SecurityQuery{ISIN: s.ISIN}) != nil {
		return fmt.Errorf("security %q is already defined", s.ISIN)
	}
	m.content = append(m.content, s)
	return nil
}

// Resolve returns the security matching q, or creates it.
func (m *Memory) Resolve(q pdfimport.SecurityQuery) (*pdfimport.Security, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s := m.lookup(q); s != nil {
		return s, nil
	}
	s := q.Security()
	m.content = append(m.content, s)
	return s, nil
}

// lookup searches by ISIN, then by WKN, then by name.
func (m *Memory) lookup(q pdfimport.SecurityQuery) *pdfimport.Security {
	keys := []struct {
		value string
		get   func(*pdfimport.Security) string
	}{
		{q.ISIN, func(s *pdfimport.Security) string { return s.ISIN }},
		{q.WKN, func(s *pdfimport.Security) string { return s.WKN }},
		{q.Name, func(s *pdfimport.Security) string { return s.Name }},
	}
	for _, k := range keys {
		if k.value == "" {
			continue
		}
		for _, s := range m.content {
			if k.get(s) == k.value {
				return s
			}
		}
	}
	return nil
}

var _ pdfimport.Resolver = (*Memory)(nil)
