package pdfimport

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/etnz/pdfimport/date"
)

// Kind is a typed string for identifying transactions.
type Kind string

// Kinds of extracted transactions.
const (
	KindBuy       Kind = "buy"
	KindSell      Kind = "sell"
	KindDividend  Kind = "dividend"
	KindTaxRefund Kind = "tax-refund"
	KindInterest  Kind = "interest"
	KindFee       Kind = "fee"
	KindTax       Kind = "tax"
)

// Errors reported by Transaction.Validate.
var (
	ErrMissingCurrency = errors.New("missing currency")
	ErrMissingAmount   = errors.New("missing amount")
)

// Transaction is the record extracted from a document.
//
// The settlement amount is always positive, the Kind tells the direction.
type Transaction struct {
	Kind     Kind
	DateTime date.DateTime
	Security *Security
	Shares   Quantity
	Units    []Unit
	Note     string

	currency  string
	amount    int64
	amountSet bool
}

// New returns an empty transaction of kind k.
func New(k Kind) *Transaction { return &Transaction{Kind: k} }

// SetCurrency sets the settlement currency.
func (t *Transaction) SetCurrency(cur string) { t.currency = cur }

// SetAmount sets the settlement amount in minor units.
func (t *Transaction) SetAmount(minor int64) {
	t.amount = minor
	t.amountSet = true
}

// SetMonetaryAmount sets both currency and amount.
func (t *Transaction) SetMonetaryAmount(m Money) {
	t.SetCurrency(m.Currency())
	t.SetAmount(m.Amount())
}

// Currency returns the settlement currency, "" when not set.
func (t *Transaction) Currency() string { return t.currency }

// Amount returns the settlement amount in minor units.
func (t *Transaction) Amount() int64 { return t.amount }

// HasAmount reports whether SetAmount was called.
func (t *Transaction) HasAmount() bool { return t.amountSet }

// MonetaryAmount returns the settlement amount as Money.
func (t *Transaction) MonetaryAmount() Money { return M(t.amount, t.currency) }

// AddUnit appends u. Zero amount units are ignored.
// The unit amount must be in settlement currency once the latter is known.
func (t *Transaction) AddUnit(u Unit) error {
	if u.Amount.IsZero() {
		return nil
	}
	if t.currency != "" && u.Amount.Currency() != t.currency {
		return fmt.Errorf("%w: %s unit in %s, transaction settles in %s", ErrMalformedCurrency, u.Type, u.Amount.Currency(), t.currency)
	}
	t.Units = append(t.Units, u)
	return nil
}

// UnitsOf returns the units of type typ.
func (t *Transaction) UnitsOf(typ UnitType) []Unit {
	var units []Unit
	for _, u := range t.Units {
		if u.Type == typ {
			units = append(units, u)
		}
	}
	return units
}

// Sum returns the sum of all units of type typ in settlement currency.
func (t *Transaction) Sum(typ UnitType) Money {
	total := M(0, t.currency)
	for _, u := range t.UnitsOf(typ) {
		total = total.Add(u.Amount)
	}
	return total
}

// Validate checks that the transaction can be emitted.
func (t *Transaction) Validate() error {
	if t.currency == "" {
		return ErrMissingCurrency
	}
	if money.GetCurrency(t.currency) == nil {
		return fmt.Errorf("%w: %q", ErrMalformedCurrency, t.currency)
	}
	if !t.amountSet {
		return ErrMissingAmount
	}
	return nil
}

func (t *Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind)
	if !t.DateTime.IsZero() {
		w.Append("date", t.DateTime)
	}
	if t.Security != nil {
		w.Append("security", t.Security)
	}
	if !t.Shares.IsZero() {
		w.Append("shares", t.Shares)
	}
	w.EmbedFrom(t.MonetaryAmount())
	if len(t.Units) > 0 {
		w.Append("units", t.Units)
	}
	w.Optional("note", t.Note)
	return w.MarshalJSON()
}
