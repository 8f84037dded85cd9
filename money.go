package pdfimport

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value as an integer amount of minor units (cents for EUR).
type Money struct {
	amount int64
	cur    string
}

// M returns a Money of amount minor units in currency.
func M(amount int64, currency string) Money { return Money{amount: amount, cur: currency} }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// fraction returns the number of minor unit digits of a currency, 2 for unknown codes.
func fraction(cur string) int32 {
	return int32(money.New(0, cur).Currency().Fraction)
}

// fromMajor converts a major unit value into minor units of cur using round to remove the
// extra digits.
func fromMajor(d decimal.Decimal, cur string, round func(decimal.Decimal) decimal.Decimal) Money {
	return Money{amount: round(d.Shift(fraction(cur))).IntPart(), cur: cur}
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	return cur.Formatter().Format(m.amount)
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Amount() int64            { return m.amount }
func (m Money) Equal(n Money) bool       { return m.amount == n.amount && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.amount == 0 }
func (m Money) IsNegative() bool         { return m.amount < 0 }
func (m Money) Neg() Money               { return Money{amount: -m.amount, cur: m.cur} }
func (m Money) Decimal() decimal.Decimal { return decimal.New(m.amount, -fraction(m.cur)) }

// Add returns m+n, a zero currency adopts the other one.
func (m Money) Add(n Money) Money {
	return Money{amount: m.amount + n.amount, cur: cur(m, n)}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.Decimal())
	return w.MarshalJSON()
}
