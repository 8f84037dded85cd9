package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/pdfimport/parser"
	md "github.com/nao1215/markdown"
)

// VendorsMarkdown lists the extractors, their document types and blocks.
func VendorsMarkdown(extractors []*parser.Extractor) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Vendors")
	for _, e := range extractors {
		doc.H2(e.Name())
		if ids := e.Identifiers(); len(ids) > 0 {
			doc.PlainText("Identified by " + strings.Join(ids, ", ") + ".")
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
			Header:    []string{"Document Type", "Block"},
		}
		for _, d := range e.DocumentTypes() {
			for _, b := range d.Blocks() {
				table.Rows = append(table.Rows, []string{cell(d.Name()), code(cell(b))})
			}
		}
		doc.Table(table)
	}
	return doc.String()
}
