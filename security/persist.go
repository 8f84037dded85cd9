package security

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// this file contains code to persist the store in a file that is still human readable, and
// yet git friendly.

// Load reads the store persisted in filename. A missing file is an empty store.
func Load(filename string) (*Memory, error) {
	m := NewMemory()
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open securities file %q: %w", filename, err)
	}
	defer f.Close()

	if err := m.Import(f); err != nil {
		return nil, fmt.Errorf("load error: %q: %w", filename, err)
	}
	return m, nil
}

// Persist writes the store in filename, replacing it atomically.
func (m *Memory) Persist(filename string) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".securities-*")
	if err != nil {
		return fmt.Errorf("persist error: cannot create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := m.Export(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("persist error: write error on file %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist error: cannot close file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("persist error: cannot replace %q: %w", filename, err)
	}
	log.Printf("persist-securities-file name=%q count=%d", filename, m.Len())
	return nil
}
