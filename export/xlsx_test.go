package export

import (
	"bytes"
	"testing"

	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/parser"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	buy := pdfimport.New(pdfimport.KindBuy)
	buy.Security = &pdfimport.Security{Name: "BGF - WORLD TECHNOLOGY FUND", ISIN: "LU0171310443", WKN: "A0BMAN"}
	buy.SetMonetaryAmount(pdfimport.M(50971, "EUR"))
	if err := buy.AddUnit(pdfimport.NewUnit(pdfimport.UnitFee, pdfimport.M(1456, "EUR"))); err != nil {
		t.Fatal(err)
	}

	dividend := pdfimport.New(pdfimport.KindDividend)
	dividend.SetMonetaryAmount(pdfimport.M(1516, "EUR"))
	if err := dividend.AddUnit(pdfimport.NewForexUnit(pdfimport.UnitTax, pdfimport.M(284, "EUR"), pdfimport.M(353, "USD"), decimal.RequireFromString("0.8032451102"))); err != nil {
		t.Fatal(err)
	}

	results := []*parser.Result{
		{Document: "Kauf01.txt", Items: []*pdfimport.Transaction{buy}},
		{Document: "empty.txt"},
		{Document: "Dividende03.txt", Items: []*pdfimport.Transaction{dividend}},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, results); err != nil {
		t.Fatalf("WriteXLSX() error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("cannot read back the workbook: %v", err)
	}
	defer f.Close()

	if diff := cmp.Diff([]string{TransactionsSheet, UnitsSheet}, f.GetSheetList()); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}

	rows, err := f.GetRows(TransactionsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("Transactions sheet has %d rows, want 3: %v", len(rows), rows)
	}
	if got := rows[1][:5]; !cmp.Equal(got, []string{"Kauf01.txt", "", "buy", "BGF - WORLD TECHNOLOGY FUND", "LU0171310443"}) {
		t.Errorf("first transaction got %v", got)
	}
	if got, want := rows[1][7], "509.71"; got != want {
		t.Errorf("amount cell got %q, want %q", got, want)
	}
	if got, want := rows[2][0], "Dividende03.txt"; got != want {
		t.Errorf("second transaction document got %q, want %q", got, want)
	}

	units, err := f.GetRows(UnitsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 3 {
		t.Fatalf("Units sheet has %d rows, want 3: %v", len(units), units)
	}
	if got := units[2][:3]; !cmp.Equal(got, []string{"Dividende03.txt", "3", "tax"}) {
		t.Errorf("dividend unit got %v", got)
	}
	if got, want := units[2][6], "USD"; got != want {
		t.Errorf("forex currency cell got %q, want %q", got, want)
	}
}
