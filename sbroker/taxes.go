package sbroker

import (
	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/parser"
)

// tax returns an assignment adding the amount captured as name as a tax.
func tax(name string) parser.Assignment {
	return func(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
		m, err := v.Money(name, "currency")
		if err != nil {
			return err
		}
		return parser.AddTax(t, m, ctx)
	}
}

// withholding returns an assignment adding the amount captured as name as a withholding tax.
func withholding(name string, strength parser.Withholding) parser.Assignment {
	return func(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
		m, err := v.Money(name, "currency")
		if err != nil {
			return err
		}
		return parser.AddWithholdingTax(t, m, ctx, strength)
	}
}

func addTaxes(tpl *parser.Template) {
	// zu versteuern (negativ) EUR 45,00
	tpl.Section("n").Optional().
		Match(`zu versteuern \(negativ\) (?<n>.*)`).
		Assign(func(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
			ctx.SetBool(parser.KeyNegative, true)
			return nil
		})

	// percent is the rate and base printed before the tax on the percentage layouts.
	const percent = `[\.,\d]+ % .* [\.,\d]+ \w{3}`

	// einbehaltene Kapitalertragsteuer EUR 7,03
	tpl.Section("tax", "currency").Optional().
		Match(`einbehaltene Kapitalertragsteuer (?<currency>` + cur + `) (?<tax>` + amount + `)`).
		Assign(tax("tax"))

	// Kapitalertragsteuer 24,51 % auf 11,00 EUR 2,70- EUR
	tpl.Section("tax", "currency").Optional().
		Match(`Kapitalertragsteuer ` + percent + ` (?<tax>` + amount + `)- (?<currency>` + cur + `)`).
		Assign(tax("tax"))

	// Kapitalertragsteuer EUR 70,16
	tpl.Section("tax", "currency").Optional().
		Match(`Kapitalertragsteuer (?<currency>` + cur + `) (?<tax>` + amount + `)`).
		Assign(tax("tax"))

	// einbehaltener Solidaritätszuschlag EUR 0,38
	tpl.Section("tax", "currency").Optional().
		Match(`einbehaltener Solidarit.tszuschlag (?<currency>` + cur + `) (?<tax>` + amount + `)`).
		Assign(tax("tax"))

	// Solidaritätszuschlag EUR 3,86
	tpl.Section("tax", "currency").Optional().
		Match(`Solidarit.tszuschlag (?<currency>` + cur + `) (?<tax>` + amount + `)`).
		Assign(tax("tax"))

	// Solidaritätszuschlag 5,5 % auf 2,70 EUR 0,14- EUR
	tpl.Section("tax", "currency").Optional().
		Match(`Solidarit.tszuschlag ` + percent + ` (?<tax>` + amount + `)- (?<currency>` + cur + `)`).
		Assign(tax("tax"))

	// einbehaltener Kirchensteuer EUR 1,00
	tpl.Section("tax", "currency").Optional().
		Match(`einbehaltener Kirchensteuer (?<currency>` + cur + `) (?<tax>` + amount + `)`).
		Assign(tax("tax"))

	// Kirchensteuer EUR 1,00
	tpl.Section("tax", "currency").Optional().
		Match(`Kirchensteuer (?<currency>` + cur + `) (?<tax>` + amount + `)`).
		Assign(tax("tax"))

	// Kirchensteuer 8 % auf 2,70 EUR 0,21- EUR
	tpl.Section("tax", "currency").Optional().
		Match(`Kirchensteuer ` + percent + ` (?<tax>` + amount + `)- (?<currency>` + cur + `)`).
		Assign(tax("tax"))

	// Einbehaltene Quellensteuer 15 % auf 31,32 USD 4,12- EUR
	tpl.Section("withheld", "currency").Optional().
		Match(`Einbehaltene Quellensteuer .* (?<withheld>` + amount + `)- (?<currency>` + cur + `)`).
		Assign(withholding("withheld", parser.Withheld))

	// Anrechenbare Quellensteuer pro Stück 0,01879125 USD 4,70 USD
	tpl.Section("creditable", "currency").Optional().
		Match(`Anrechenbare Quellensteuer .* (?<creditable>` + amount + `) (?<currency>` + cur + `)`).
		Assign(withholding("creditable", parser.Creditable))

	// davon anrechenbare US-Quellensteuer 15% USD 13,13
	tpl.Section("tax", "currency").Optional().
		Match(`davon anrechenbare US-Quellensteuer [\.,\d]+% (?<currency>` + cur + `) (?<tax>` + amount + `)`).
		Assign(tax("tax"))
}
