package pdfimport

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/pdfimport/date"
)

func TestTransaction_AddUnit(t *testing.T) {
	tx := New(KindBuy)
	tx.SetCurrency("EUR")

	if err := tx.AddUnit(NewUnit(UnitFee, M(0, "EUR"))); err != nil {
		t.Fatalf("AddUnit(zero) unexpected error: %v", err)
	}
	if len(tx.Units) != 0 {
		t.Errorf("zero unit was added: %v", tx.Units)
	}
	if err := tx.AddUnit(NewUnit(UnitFee, M(1090, "EUR"))); err != nil {
		t.Fatalf("AddUnit() unexpected error: %v", err)
	}
	if err := tx.AddUnit(NewUnit(UnitTax, M(250, "USD"))); !errors.Is(err, ErrMalformedCurrency) {
		t.Errorf("AddUnit(USD) error = %v, want ErrMalformedCurrency", err)
	}
	if err := tx.AddUnit(NewUnit(UnitFee, M(229, "EUR"))); err != nil {
		t.Fatalf("AddUnit() unexpected error: %v", err)
	}
	if got, want := tx.Sum(UnitFee), M(1319, "EUR"); !got.Equal(want) {
		t.Errorf("Sum(fee) = %v, want %v", got, want)
	}
	if got := len(tx.UnitsOf(UnitTax)); got != 0 {
		t.Errorf("UnitsOf(tax) has %d units, want 0", got)
	}
}

func TestTransaction_Validate(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(tx *Transaction)
		want  error
	}{
		{"valid", func(tx *Transaction) { tx.SetMonetaryAmount(M(100, "EUR")) }, nil},
		{"zero amount is valid", func(tx *Transaction) { tx.SetMonetaryAmount(M(0, "EUR")) }, nil},
		{"no currency", func(tx *Transaction) { tx.SetAmount(100) }, ErrMissingCurrency},
		{"no amount", func(tx *Transaction) { tx.SetCurrency("EUR") }, ErrMissingAmount},
		{"unknown currency", func(tx *Transaction) { tx.SetMonetaryAmount(M(100, "XYZ")) }, ErrMalformedCurrency},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := New(KindDividend)
			tc.setup(tx)
			if err := tx.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestEncodeTransactions(t *testing.T) {
	tx := New(KindDividend)
	tx.DateTime = date.On(date.New(2021, 3, 11))
	tx.Security = &Security{Name: "Apple Inc.", ISIN: "US0378331005"}
	tx.Shares = Q(10)
	tx.SetMonetaryAmount(M(1771, "EUR"))
	if err := tx.AddUnit(NewForexUnit(UnitGrossValue, M(1718, "EUR"), M(2050, "USD"), dec("0.8380824673"))); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, []*Transaction{tx, tx}); err != nil {
		t.Fatalf("EncodeTransactions() unexpected error: %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var jobj any
	if err := json.Unmarshal(lines[0], &jobj); err != nil {
		t.Fatalf("invalid json %s: %v", lines[0], err)
	}
	testCases := []struct {
		path string
		want any
	}{
		{"$.kind", "dividend"},
		{"$.date", "2021-03-11"},
		{"$.security.isin", "US0378331005"},
		{"$.shares", "10"},
		{"$.currency", "EUR"},
		{"$.amount", "17.71"},
		{"$.units[0].type", "gross-value"},
		{"$.units[0].amount", "17.18"},
		{"$.units[0].forex.currency", "USD"},
		{"$.units[0].rate", "0.8380824673"},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := jsonpath.Get(tc.path, jobj)
			if err != nil {
				t.Fatalf("jsonpath.Get(%q) unexpected error: %v", tc.path, err)
			}
			if got != tc.want {
				t.Errorf("%s = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}
