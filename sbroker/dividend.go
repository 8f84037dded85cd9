package sbroker

import (
	"strings"

	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/parser"
)

func (x *extractor) dividend() *parser.DocumentType {
	doc := parser.NewDocumentType("Dividende", `Dividendengutschrift|Aussch.ttung`)

	tpl := parser.NewTemplate(parser.Kind(pdfimport.KindDividend))

	// Gattungsbezeichnung ISIN
	// iS.EO G.B.C.1.5-10.5y.U.ETF DE Inhaber-Anteile DE000A0H0785
	tpl.Section("isin", "name").Optional().
		Find(`^Gattungsbezeichnung ISIN$`).
		Match(`(?<name>.*) (?<isin>\w{12})`).
		Assign(x.security)

	// Nominale Wertpapierbezeichnung ISIN (WKN)
	// Stück 250 GLADSTONE COMMERCIAL CORP. US3765361080 (260884)
	// REGISTERED SHARES DL -,01
	// Zahlbarkeitstag 31.12.2021 Ausschüttung pro St. 0,125275000 USD
	tpl.Section("shares", "name", "isin", "wkn", "name1", "currency").Optional().
		Match(`St.ck (?<shares>` + amount + `) (?<name>.*) (?<isin>\w{12}) \((?<wkn>.*)\)`).
		Match(`(?<name1>.*)`).
		Match(`Zahlbarkeitstag ` + day + ` Aussch.ttung pro St\. ` + amount + ` (?<currency>` + cur + `)`).
		Assign(func(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
			q := v.Security()
			if !strings.HasPrefix(v["name1"], "Zahlbarkeitstag") {
				q.Name = strings.TrimSpace(q.Name) + " " + strings.TrimSpace(v["name1"])
			}
			if err := setShares(t, v, ctx); err != nil {
				return err
			}
			return x.setSecurity(t, q, ctx)
		})

	tpl.OneOf(
		// STK 16,000 17.11.2014 17.11.2014 EUR 0,793806
		parser.NewSection("date").
			Match(`STK ` + amount + ` ` + day + ` (?<date>` + day + `) .*`).
			Assign(setDate),
		// Zahlbarkeitstag 31.12.2021 Ausschüttung pro St. 0,125275000 USD
		parser.NewSection("date").
			Match(`Zahlbarkeitstag (?<date>` + day + `) .*`).
			Assign(setDate),
	)

	tpl.OneOf(
		// STK 16,000 17.11.2014 17.11.2014 EUR 0,793806
		parser.NewSection("shares").
			Match(`STK (?<shares>` + amount + `) ` + day + ` ` + day + ` .*`).
			Assign(setShares),
		// Stück 250 GLADSTONE COMMERCIAL CORP. US3765361080 (260884)
		parser.NewSection("shares").
			Match(`St.ck (?<shares>` + amount + `) .*`).
			Assign(setShares),
	)

	tpl.OneOf(
		// Wert Konto-Nr. Betrag zu Ihren Gunsten
		// 17.11.2014 10/0000/000 EUR 12,70
		parser.NewSection("currency", "amount").
			Find(`Wert Konto-Nr\. Betrag zu Ihren Gunsten`).
			Match(day+` .* (?<currency>`+cur+`) (?<amount>`+amount+`)`).
			Assign(setAmount),
		// Wert Konto-Nr. Devisenkurs Betrag zu Ihren Gunsten
		// 15.12.2014 12/3456/789 EUR/USD 1,24495 EUR 52,36
		parser.NewSection("currency", "amount").
			Find(`Wert Konto-Nr\. Devisenkurs Betrag zu Ihren Gunsten`).
			Match(day+` .* (?<currency>`+cur+`) (?<amount>`+amount+`)`).
			Assign(setAmount),
		// Ausmachender Betrag 20,31+ EUR
		parser.NewSection("amount", "currency").
			Match(`Ausmachender Betrag (?<amount>`+amount+`)\+ (?<currency>`+cur+`)`).
			Assign(setAmount),
	)

	// Devisenkurs EUR / USD 1,1412
	// Ausschüttung 31,32 USD 27,44+ EUR
	tpl.Section("exchangeRate", "fxAmount", "fxCurrency", "amount", "currency").Optional().
		Match(`Devisenkurs ` + cur + ` / ` + cur + ` (\s+)?(?<exchangeRate>` + amount + `)`).
		Match(`(Dividendengutschrift|Aussch.ttung) (?<fxAmount>` + amount + `) (?<fxCurrency>` + cur + `) (?<amount>` + amount + `)\+ (?<currency>` + cur + `)`).
		Assign(grossValue)

	// Wert Konto-Nr. Devisenkurs Betrag zu Ihren Gunsten
	// 15.12.2014 12/3456/789 EUR/USD 1,24495 EUR 52,36
	tpl.Section("exchangeRate").Optional().
		Find(`Wert Konto-Nr\. Devisenkurs Betrag zu Ihren Gunsten`).
		Match(day + ` .* ` + cur + `/` + cur + ` (?<exchangeRate>` + amount + `) ` + cur + ` ` + amount).
		Assign(func(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
			rate, err := v.Rate("exchangeRate")
			if err != nil {
				return err
			}
			ctx.SetExchangeRate(rate)
			return nil
		})

	addTaxes(tpl)
	addFees(tpl)

	doc.AddBlock(parser.NewBlock(`(Dividendengutschrift|Aussch.ttung (f.r|Investmentfonds))(.*)?`).Set(tpl))
	return doc
}

// grossValue caches the exchange rate and records the gross dividend in both currencies when
// the security is not quoted in settlement currency.
func grossValue(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
	rate, err := v.Rate("exchangeRate")
	if err != nil {
		return err
	}
	fx, err := v.Money("fxAmount", "fxCurrency")
	if err != nil {
		return err
	}
	native, err := v.Money("amount", "currency")
	if err != nil {
		return err
	}
	settlement := t.Currency()
	rate = pdfimport.OrientRate(rate, settlement, fx.Currency())
	ctx.SetExchangeRate(rate)

	quote := fx.Currency()
	if t.Security != nil && t.Security.Currency != "" {
		quote = t.Security.Currency
	}
	if quote == settlement {
		return nil
	}
	u, err := pdfimport.NewGrossValue(settlement, fx, native, pdfimport.Inverse(rate))
	if err != nil {
		return err
	}
	return t.AddUnit(u)
}
