package pdfimport

import "github.com/shopspring/decimal"

// Quantity is a number of shares, possibly fractional for funds (7,1535 units).
type Quantity struct {
	value decimal.Decimal
}

// Q returns a Quantity for value.
func Q[T int | int64 | float64 | decimal.Decimal](value T) Quantity {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Quantity{value: v}
	case int:
		return Quantity{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Quantity{value: decimal.NewFromInt(v)}
	case float64:
		return Quantity{value: decimal.NewFromFloat(v)}
	default:
		panic("unsupported type")
	}
}

func (q Quantity) Equal(p Quantity) bool     { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool              { return q.value.IsZero() }
func (q Quantity) IsPositive() bool          { return q.value.IsPositive() }
func (q Quantity) Decimal() decimal.Decimal  { return q.value }
func (q Quantity) String() string            { return q.value.String() }
func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }
