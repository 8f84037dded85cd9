package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"
)

const testdata = "../sbroker/testdata"

// noConfig isolates a test from the user configuration.
func noConfig(t *testing.T) {
	t.Helper()
	t.Setenv("PDFX_CONFIG", "")
	old := *configFile
	*configFile = ""
	t.Cleanup(func() { *configFile = old })
}

// runExtract runs the extract command with args.
func runExtract(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	cmd := &extractCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

// decodeLines decodes each line of a JSONL file.
func decodeLines(t *testing.T, filename string) []any {
	t.Helper()
	file, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	var objs []any
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var v any
		if err := json.Unmarshal(scanner.Bytes(), &v); err != nil {
			t.Fatalf("invalid json line %q: %v", scanner.Text(), err)
		}
		objs = append(objs, v)
	}
	return objs
}

func TestExtractJSONL(t *testing.T) {
	noConfig(t)
	output := filepath.Join(t.TempDir(), "transactions.jsonl")
	securities := filepath.Join(t.TempDir(), "securities.jsonl")

	status := runExtract(t, "-o", output, "-j", "2", "-securities", securities,
		filepath.Join(testdata, "Kauf01.txt"),
		filepath.Join(testdata, "Verkauf02.txt"),
		filepath.Join(testdata, "Dividende02.txt"),
	)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	objs := decodeLines(t, output)
	if len(objs) != 4 {
		t.Fatalf("got %d transactions, want 4", len(objs))
	}

	tests := []struct {
		index int
		path  string
		want  any
	}{
		{0, "$.kind", "buy"},
		{0, "$.security.isin", "LU0171310443"},
		{0, "$.amount", "509.71"},
		{1, "$.kind", "sell"},
		{2, "$.kind", "tax-refund"},
		{2, "$.date", "2015-06-03"},
		{3, "$.kind", "dividend"},
		{3, "$.units[0].type", "gross-value"},
		{3, "$.units[0].forex.currency", "USD"},
	}
	for _, tc := range tests {
		got, err := jsonpath.Get(tc.path, objs[tc.index])
		if err != nil {
			t.Errorf("jsonpath.Get(%q) on transaction %d unexpected error: %v", tc.path, tc.index, err)
			continue
		}
		if got != tc.want {
			t.Errorf("transaction %d: %s = %v, want %v", tc.index, tc.path, got, tc.want)
		}
	}

	content, err := os.ReadFile(securities)
	if err != nil {
		t.Fatalf("securities were not persisted: %v", err)
	}
	if n := strings.Count(string(content), "\n"); n != 3 {
		t.Errorf("securities file has %d lines, want 3:\n%s", n, content)
	}
}

func TestExtractMarkdown(t *testing.T) {
	noConfig(t)
	output := filepath.Join(t.TempDir(), "transactions.md")

	status := runExtract(t, "-f", "markdown", "-o", output, filepath.Join(testdata, "Dividende01.txt"))
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Transactions", "Dividende01.txt", "DE000A0H0785", "2014-11-17"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("markdown output does not contain %q:\n%s", want, content)
		}
	}
}

func TestExtractXLSX(t *testing.T) {
	noConfig(t)
	output := filepath.Join(t.TempDir(), "transactions.xlsx")

	status := runExtract(t, "-f", "xlsx", "-o", output, filepath.Join(testdata, "Verkauf01.txt"))
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	f, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows("Transactions")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1][2] != "sell" {
		t.Errorf("Transactions sheet got %v", rows)
	}
}

func TestExtractUnrecognized(t *testing.T) {
	noConfig(t)
	doc := filepath.Join(t.TempDir(), "other.txt")
	if err := os.WriteFile(doc, []byte("Commerzbank AG\nKauf\n"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(t.TempDir(), "transactions.jsonl")

	// an unrecognized document is only a warning.
	if status := runExtract(t, "-o", output, doc); status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}
	if objs := decodeLines(t, output); len(objs) != 0 {
		t.Errorf("got %d transactions, want none", len(objs))
	}
}

func TestExtractErrors(t *testing.T) {
	noConfig(t)
	tests := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{"no documents", nil, subcommands.ExitUsageError},
		{"missing document", []string{"-o", filepath.Join(t.TempDir(), "out.jsonl"), "missing.txt"}, subcommands.ExitFailure},
		{"unknown format", []string{"-f", "pdf", filepath.Join(testdata, "Kauf01.txt")}, subcommands.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runExtract(t, tt.args...); got != tt.want {
				t.Errorf("Execute() = %v, want %v", got, tt.want)
			}
		})
	}
}

// closer records writes and fails on Close with err.
type closer struct {
	strings.Builder
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestWriteAndClose(t *testing.T) {
	errClose := errors.New("disk full")
	errWrite := errors.New("write failed")
	write := func(w io.Writer) error {
		_, err := io.WriteString(w, "{}\n")
		return err
	}

	tests := []struct {
		name     string
		closeErr error
		fn       func(io.Writer) error
		want     error
	}{
		{"ok", nil, write, nil},
		{"close error", errClose, write, errClose},
		{"write error first", errClose, func(io.Writer) error { return errWrite }, errWrite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &closer{err: tt.closeErr}
			if err := writeAndClose(c, tt.fn); !errors.Is(err, tt.want) {
				t.Errorf("writeAndClose() error = %v, want %v", err, tt.want)
			}
			if !c.closed {
				t.Error("writeAndClose() did not close")
			}
		})
	}
}
