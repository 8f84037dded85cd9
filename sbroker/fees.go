package sbroker

import (
	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/parser"
)

func fee(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
	m, err := v.Money("fee", "currency")
	if err != nil {
		return err
	}
	return parser.AddFee(t, m, ctx)
}

func addFees(tpl *parser.Template) {
	// Handelszeit 09:02 Orderentgelt                EUR 10,90-
	tpl.Section("fee", "currency").Optional().
		Match(`.* Orderentgelt (\s+)?(?<currency>` + cur + `) (?<fee>` + amount + `)-`).
		Assign(fee)

	// Orderentgelt
	// EUR 0,71-
	tpl.Section("fee", "currency").Optional().
		Match(`Orderentgelt`).
		Match(`(?<currency>` + cur + `) (?<fee>` + amount + `)-`).
		Assign(fee)

	// Börse Stuttgart Börsengebühr EUR 2,29-
	tpl.Section("fee", "currency").Optional().
		Match(`.* B.rsengeb.hr (?<currency>` + cur + `) (?<fee>` + amount + `)-`).
		Assign(fee)

	// Kurswert 509,71- EUR
	// Kundenbonifikation 40 % vom Ausgabeaufschlag 9,71 EUR
	// Ausgabeaufschlag pro Anteil 5,00 %
	tpl.Section("surcharge", "rebate", "principal", "currency").Optional().
		Match(`Kurswert (?<principal>` + amount + `)- (?<currency>` + cur + `)`).
		Match(`Kundenbonifikation (?<rebate>` + amount + `) % vom Ausgabeaufschlag ` + amount + ` ` + cur).
		Match(`Ausgabeaufschlag pro Anteil (?<surcharge>` + amount + `) %`).
		Assign(func(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
			principal, err := v.Money("principal", "currency")
			if err != nil {
				return err
			}
			rebate, err := v.Decimal("rebate")
			if err != nil {
				return err
			}
			surcharge, err := v.Decimal("surcharge")
			if err != nil {
				return err
			}
			return parser.AddFee(t, pdfimport.PercentageFee(principal, rebate, surcharge), ctx)
		})

	// Kurswert
	// EUR 14,40-
	tpl.Section("fee", "currency").Optional().
		Match(`Kurswert`).
		Match(`(?<currency>` + cur + `) (?<fee>` + amount + `)-`).
		Assign(fee)
}
