package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/parser"
	md "github.com/nao1215/markdown"
)

// cell escapes s for use in a table cell.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// code renders s as inline code.
func code(s string) string { return "`" + s + "`" }

// orEmpty renders zero amounts as an empty cell.
func orEmpty(m pdfimport.Money) string {
	if m.IsZero() {
		return ""
	}
	return m.String()
}

// TransactionsMarkdown renders the transactions of each document.
func TransactionsMarkdown(results []*parser.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	for _, res := range results {
		doc.H2(res.Document)
		if len(res.Items) == 0 {
			doc.PlainText("No transaction.")
			continue
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Date", "Kind", "Security", "Shares", "Amount", "Taxes", "Fees"},
		}
		for _, tx := range res.Items {
			shares, day := "", ""
			if !tx.Shares.IsZero() {
				shares = tx.Shares.String()
			}
			if !tx.DateTime.IsZero() {
				day = tx.DateTime.String()
			}
			table.Rows = append(table.Rows, []string{
				day,
				string(tx.Kind),
				cell(tx.Security.String()),
				shares,
				tx.MonetaryAmount().String(),
				orEmpty(tx.Sum(pdfimport.UnitTax)),
				orEmpty(tx.Sum(pdfimport.UnitFee)),
			})
		}
		doc.Table(table)

		var forex []string
		for _, tx := range res.Items {
			for _, u := range tx.Units {
				if u.HasForex() {
					forex = append(forex, string(u.Type)+" "+u.Amount.String()+" from "+u.Forex.String()+" at "+u.Rate.String())
				}
			}
		}
		if len(forex) > 0 {
			doc.H3("Foreign currencies")
			doc.BulletList(forex...)
		}
	}
	return doc.String()
}
