// Package export writes extracted transactions to spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/parser"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	TransactionsSheet = "Transactions"
	UnitsSheet        = "Units"
)

var transactionsHeader = []any{"Document", "Date", "Kind", "Name", "ISIN", "WKN", "Shares", "Amount", "Currency", "Taxes", "Fees", "Note"}

var unitsHeader = []any{"Document", "Transaction", "Type", "Amount", "Currency", "Forex", "Forex Currency", "Rate"}

// number converts m to a spreadsheet number, in major units.
func number(m pdfimport.Money) float64 { return m.Decimal().InexactFloat64() }

// WriteXLSX writes the transactions of results as an xlsx workbook.
//
// The Transactions sheet has one row per transaction, the Units sheet one row per unit referring
// to the transaction row number.
func WriteXLSX(w io.Writer, results []*parser.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		return fmt.Errorf("cannot rename sheet: %w", err)
	}
	if _, err := f.NewSheet(UnitsSheet); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", UnitsSheet, err)
	}

	if err := setRow(f, TransactionsSheet, 1, transactionsHeader); err != nil {
		return err
	}
	if err := setRow(f, UnitsSheet, 1, unitsHeader); err != nil {
		return err
	}

	txRow, unitRow := 2, 2
	for _, res := range results {
		for _, tx := range res.Items {
			var name, isin, wkn string
			if tx.Security != nil {
				name, isin, wkn = tx.Security.Name, tx.Security.ISIN, tx.Security.WKN
			}
			row := []any{
				res.Document,
				dateOf(tx),
				string(tx.Kind),
				name,
				isin,
				wkn,
				tx.Shares.Decimal().InexactFloat64(),
				number(tx.MonetaryAmount()),
				tx.Currency(),
				number(tx.Sum(pdfimport.UnitTax)),
				number(tx.Sum(pdfimport.UnitFee)),
				tx.Note,
			}
			if err := setRow(f, TransactionsSheet, txRow, row); err != nil {
				return err
			}

			for _, u := range tx.Units {
				row := []any{res.Document, txRow, string(u.Type), number(u.Amount), u.Amount.Currency()}
				if u.HasForex() {
					row = append(row, number(u.Forex), u.Forex.Currency(), u.Rate.InexactFloat64())
				}
				if err := setRow(f, UnitsSheet, unitRow, row); err != nil {
					return err
				}
				unitRow++
			}
			txRow++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// dateOf returns the transaction date, or "" when the document did not state one.
func dateOf(tx *pdfimport.Transaction) string {
	if tx.DateTime.IsZero() {
		return ""
	}
	return tx.DateTime.String()
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("cannot write %s!%s: %w", sheet, cell, err)
	}
	return nil
}
