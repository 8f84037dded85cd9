package security

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/etnz/pdfimport"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// SQLite stores securities in a sqlite database. It is safe for concurrent use.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex // serializes lookup and creation
}

// OpenSQLite opens or creates the database at the given path.
func OpenSQLite(dbPath string) (*SQLite, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("execute schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error { return s.db.Close() }

// nullable stores empty identifiers as NULL, so that they do not collide in unique indexes.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Resolve returns the security matching q, or creates it.
func (s *SQLite) Resolve(q pdfimport.SecurityQuery) (*pdfimport.Security, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range []struct{ column, value string }{{"isin", q.ISIN}, {"wkn", q.WKN}, {"name", q.Name}} {
		if k.value == "" {
			continue
		}
		sec, err := s.find(k.column, k.value)
		if err != nil {
			return nil, err
		}
		if sec != nil {
			return sec, nil
		}
	}

	_, err := s.db.Exec(`
		INSERT INTO securities (name, isin, wkn, currency) VALUES (?, ?, ?, ?)
	`, q.Name, nullable(q.ISIN), nullable(q.WKN), q.Currency)
	if err != nil {
		return nil, fmt.Errorf("insert security: %w", err)
	}
	return q.Security(), nil
}

// find returns the first security whose column equals value, nil if none.
// column is one of the constant names used by Resolve.
func (s *SQLite) find(column, value string) (*pdfimport.Security, error) {
	var sec pdfimport.Security
	var isin, wkn sql.NullString
	err := s.db.QueryRow(`
		SELECT name, isin, wkn, currency
		FROM securities
		WHERE `+column+` = ?
		ORDER BY id
		LIMIT 1
	`, value).Scan(&sec.Name, &isin, &wkn, &sec.Currency)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query security: %w", err)
	}
	sec.ISIN, sec.WKN = isin.String, wkn.String
	return &sec, nil
}

// All returns the securities in creation order.
func (s *SQLite) All() ([]pdfimport.Security, error) {
	rows, err := s.db.Query(`
		SELECT name, isin, wkn, currency
		FROM securities
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query securities: %w", err)
	}
	defer rows.Close()

	var list []pdfimport.Security
	for rows.Next() {
		var sec pdfimport.Security
		var isin, wkn sql.NullString
		if err := rows.Scan(&sec.Name, &isin, &wkn, &sec.Currency); err != nil {
			return nil, fmt.Errorf("scan security: %w", err)
		}
		sec.ISIN, sec.WKN = isin.String, wkn.String
		list = append(list, sec)
	}
	return list, rows.Err()
}

var _ pdfimport.Resolver = (*SQLite)(nil)
