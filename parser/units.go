package parser

import "github.com/etnz/pdfimport"

// Withholding is the strength of a withholding tax statement.
type Withholding int

const (
	// Withheld is a tax actually withheld, it takes precedence over creditable amounts.
	Withheld Withholding = iota
	// Creditable is a creditable tax only counted when no withheld tax was found.
	Creditable
)

// AddTax adds a tax unit to t. Taxes are ignored in refund regions.
func AddTax(t *pdfimport.Transaction, tax pdfimport.Money, ctx *Context) error {
	if ctx.Bool(KeyNegative) {
		ctx.Logger().Debug().Stringer("tax", tax).Msg("tax ignored in refund")
		return nil
	}
	return addConverted(t, pdfimport.UnitTax, tax, ctx)
}

// AddFee adds a fee unit to t.
func AddFee(t *pdfimport.Transaction, fee pdfimport.Money, ctx *Context) error {
	return addConverted(t, pdfimport.UnitFee, fee, ctx)
}

// AddWithholdingTax adds a withholding tax unit to t.
// A Creditable tax is ignored once a Withheld tax has been added in the same context.
func AddWithholdingTax(t *pdfimport.Transaction, tax pdfimport.Money, ctx *Context, strength Withholding) error {
	switch strength {
	case Withheld:
		ctx.SetBool(KeyWithholdingTaxFound, true)
	case Creditable:
		if ctx.Bool(KeyWithholdingTaxFound) {
			ctx.Logger().Debug().Stringer("tax", tax).Msg("creditable withholding tax ignored")
			return nil
		}
	}
	return addConverted(t, pdfimport.UnitTax, tax, ctx)
}

// addConverted adds a unit in settlement currency, converting with the cached exchange rate.
// The foreign value is kept on the unit unless the security is quoted in settlement currency.
func addConverted(t *pdfimport.Transaction, typ pdfimport.UnitType, m pdfimport.Money, ctx *Context) error {
	if m.IsZero() {
		return nil
	}
	settlement := t.Currency()
	if settlement == "" || m.Currency() == settlement {
		return t.AddUnit(pdfimport.NewUnit(typ, m))
	}
	rate, ok := ctx.ExchangeRate()
	if !ok {
		ctx.Logger().Debug().Stringer(string(typ), m).Str("settlement", settlement).Msg("no exchange rate, unit ignored")
		return nil
	}
	converted := pdfimport.Convert(m, settlement, rate)
	if t.Security != nil && t.Security.Currency == settlement {
		return t.AddUnit(pdfimport.NewUnit(typ, converted))
	}
	return t.AddUnit(pdfimport.NewForexUnit(typ, converted, m, pdfimport.Inverse(rate)))
}
