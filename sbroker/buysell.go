package sbroker

import (
	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/parser"
)

// firstLine starts both the trade and the tax refund regions.
const firstLine = `(Kauf(.*)?|Verkauf(.*)?|Wertpapier Abrechnung Ausgabe Investmentfonds)`

func (x *extractor) buySell() *parser.DocumentType {
	doc := parser.NewDocumentType("Kauf/Verkauf", firstLine)

	tpl := parser.NewTemplate(parser.Kind(pdfimport.KindBuy))

	// Verkauf
	tpl.Section("type").Optional().
		Match(`(?<type>(Kauf|Verkauf))(.*)?`).
		Assign(func(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
			if v["type"] == "Verkauf" {
				t.Kind = pdfimport.KindSell
			}
			return nil
		})

	// Gattungsbezeichnung ISIN
	// iS.EO G.B.C.1.5-10.5y.U.ETF DE Inhaber-Anteile DE000A0H0785
	tpl.Section("isin", "name").Optional().
		Match(`Gattungsbezeichnung ISIN`).
		Match(`(?<name>.*) (?<isin>\w{12})`).
		Assign(x.security)

	// Nominale Wertpapierbezeichnung ISIN (WKN)
	// Stück 7,1535 BGF - WORLD TECHNOLOGY FUND LU0171310443 (A0BMAN)
	tpl.Section("shares", "name", "isin", "wkn").Optional().
		Match(`Nominale Wertpapierbezeichnung ISIN \(WKN\)`).
		Match(`St.ck (?<shares>` + amount + `) (?<name>.*) (?<isin>\w{12}) \((?<wkn>.*)\)`).
		Assign(func(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
			if err := setShares(t, v, ctx); err != nil {
				return err
			}
			return x.setSecurity(t, v.Security(), ctx)
		})

	// STK 16,000 EUR 120,4000
	tpl.Section("shares").Optional().
		Match(`STK (?<shares>` + amount + `) .*`).
		Assign(setShares)

	tpl.OneOf(
		// Auftrag vom 27.02.2021 01:31:42 Uhr
		parser.NewSection("date", "time").
			Match(`Auftrag vom (?<date>`+day+`) (?<time>\d{2}:\d{2}:\d{2}).*`).
			Assign(setDate),
		// Handelstag 05.05.2021 EUR 498,20-
		// Handelszeit 09:04
		parser.NewSection("date", "time").
			Match(`Handelstag (?<date>`+day+`) .*`).
			Match(`Handelszeit (?<time>\d{2}:\d{2})(.*)?`).
			Assign(setDate),
	)

	tpl.OneOf(
		// Ausmachender Betrag 500,00- EUR
		parser.NewSection("amount", "currency").
			Match(`Ausmachender Betrag (?<amount>`+amount+`)(-)? (?<currency>`+cur+`)`).
			Assign(setAmount),
		// Wert Konto-Nr. Betrag zu Ihren Lasten
		// 01.10.2014 10/0000/000 EUR 1.930,17
		parser.NewSection("currency", "amount").
			Match(`Wert Konto-Nr. Betrag zu Ihren (Gunsten|Lasten).*`).
			Match(day+` [/\d]+ (?<currency>`+cur+`) (?<amount>`+amount+`)`).
			Assign(setAmount),
	)

	// Devisenkurs EUR / USD 1,1987
	tpl.Section("exchangeRate", "fxCurrency").Optional().
		Match(`Devisenkurs ` + cur + ` / (?<fxCurrency>` + cur + `) +(?<exchangeRate>` + amount + `)`).
		Assign(cacheRate)

	addTaxes(tpl)
	addFees(tpl)

	doc.AddBlock(parser.NewBlock(firstLine).Set(tpl))
	doc.AddBlock(parser.NewBlock(firstLine).Set(x.taxRefund()))
	return doc
}

// cacheRate stores the exchange rate quoted in fxCurrency.
func cacheRate(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
	rate, err := v.Rate("exchangeRate")
	if err != nil {
		return err
	}
	fx, err := v.Currency("fxCurrency")
	if err != nil {
		return err
	}
	ctx.SetExchangeRate(pdfimport.OrientRate(rate, t.Currency(), fx))
	return nil
}

// taxRefund extracts the refund of taxes that comes with some trade confirmations.
func (x *extractor) taxRefund() *parser.Template {
	tpl := parser.NewTemplate(parser.Kind(pdfimport.KindTaxRefund))

	// Gattungsbezeichnung ISIN
	// iS.EO G.B.C.1.5-10.5y.U.ETF DE Inhaber-Anteile DE000A0H0785
	tpl.Section("isin", "name").Optional().
		Match(`Gattungsbezeichnung ISIN`).
		Match(`(?<name>.*) (?<isin>\w{12})`).
		Assign(x.security)

	// Wert Konto-Nr. Abrechnungs-Nr. Betrag zu Ihren Gunsten
	// 03.06.2015 10/3874/009 87966195 EUR 11,48
	tpl.Section("date", "amount", "currency").Optional().
		Match(`Wert Konto-Nr\. Abrechnungs-Nr\. Betrag zu Ihren Gunsten`).
		Match(`(?<date>` + day + `) [/\d]+ \d+ (?<currency>` + cur + `) (?<amount>` + amount + `)`).
		Assign(func(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
			if err := setDate(t, v, ctx); err != nil {
				return err
			}
			return setAmount(t, v, ctx)
		})

	tpl.Wrap(func(t *pdfimport.Transaction) *pdfimport.Transaction {
		if t.Currency() != "" && t.Amount() != 0 {
			return t
		}
		return nil
	})
	return tpl
}
