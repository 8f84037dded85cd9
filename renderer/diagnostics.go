package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/pdfimport/parser"
	md "github.com/nao1215/markdown"
)

// DiagnosticsMarkdown renders how the rule sets applied to one document.
func DiagnosticsMarkdown(res *parser.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	d := res.Diagnostics
	doc.H2(res.Document)
	doc.PlainText(fmt.Sprintf("Run %s: %d transaction(s).", code(res.RunID.String()), len(res.Items)))

	if len(d.RuleSets) == 0 {
		doc.PlainText(md.Bold("Not recognized") + ": no applicable rule set.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Rule Set", "Block", "Regions"},
	}
	for _, r := range d.Regions {
		table.Rows = append(table.Rows, []string{cell(r.RuleSet), code(cell(r.Block)), strconv.Itoa(r.Count)})
	}
	doc.Table(table)

	if len(d.Failures) > 0 {
		doc.H3("Failures")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Rule Set", "Block", "Region", "Error"},
		}
		for _, f := range d.Failures {
			table.Rows = append(table.Rows, []string{cell(f.RuleSet), code(cell(f.Block)), f.Region.String(), cell(f.Err.Error())})
		}
		doc.Table(table)
	}

	if len(d.Discards) > 0 {
		doc.H3("Discarded")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Rule Set", "Block", "Region", "Reason"},
		}
		for _, x := range d.Discards {
			table.Rows = append(table.Rows, []string{cell(x.RuleSet), code(cell(x.Block)), x.Region.String(), cell(x.Reason)})
		}
		doc.Table(table)
	}

	if len(d.Warnings) > 0 {
		doc.H3("Warnings")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Rule Set", "Block", "Section", "Line", "Warning"},
		}
		for _, w := range d.Warnings {
			table.Rows = append(table.Rows, []string{cell(w.RuleSet), code(cell(w.Block)), cell(w.Section), strconv.Itoa(w.Line + 1), cell(w.Err.Error())})
		}
		doc.Table(table)
	}
	return doc.String()
}
