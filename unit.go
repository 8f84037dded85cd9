package pdfimport

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnitType is the kind of a transaction decomposition unit.
type UnitType string

const (
	UnitTax        UnitType = "tax"
	UnitFee        UnitType = "fee"
	UnitGrossValue UnitType = "gross-value"
)

// Unit decomposes the settlement amount of a Transaction.
//
// When the document states the value in another currency, Forex holds the original value
// and Rate the settlement currency value of one foreign unit, the reciprocal of the stated rate.
type Unit struct {
	Type   UnitType
	Amount Money
	Forex  Money
	Rate   decimal.Decimal
}

// NewUnit returns a unit in settlement currency.
func NewUnit(typ UnitType, amount Money) Unit {
	return Unit{Type: typ, Amount: amount}
}

// NewForexUnit returns a unit with its foreign currency counterpart, rate is in settlement
// currency per foreign unit.
func NewForexUnit(typ UnitType, amount, forex Money, rate decimal.Decimal) Unit {
	return Unit{Type: typ, Amount: amount, Forex: forex, Rate: rate}
}

// HasForex reports whether the unit carries a foreign currency value.
func (u Unit) HasForex() bool { return u.Forex.Currency() != "" }

// NewGrossValue returns the gross value unit from two amounts printed on the same line.
//
// The amount in settlement currency becomes the unit amount, the other one the forex value,
// regardless of the order they were printed in.
func NewGrossValue(settlement string, a, b Money, rate decimal.Decimal) (Unit, error) {
	switch settlement {
	case a.Currency():
		return NewForexUnit(UnitGrossValue, a, b, rate), nil
	case b.Currency():
		return NewForexUnit(UnitGrossValue, b, a, rate), nil
	}
	return Unit{}, fmt.Errorf("%w: gross value in %s and %s, none is the settlement currency %s", ErrMalformedCurrency, a.Currency(), b.Currency(), settlement)
}

func (u Unit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", u.Type)
	w.EmbedFrom(u.Amount)
	if u.HasForex() {
		w.Append("forex", u.Forex)
		w.Append("rate", u.Rate)
	}
	return w.MarshalJSON()
}
