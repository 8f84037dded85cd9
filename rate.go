package pdfimport

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RatePrecision is the number of fractional digits kept when inverting an exchange rate.
const RatePrecision = 10

var one = decimal.NewFromInt(1)

// RoundHalfDown rounds d to places fractional digits, ties go toward zero.
//
//	RoundHalfDown(2.345, 2) = 2.34
//	RoundHalfDown(2.3451, 2) = 2.35
func RoundHalfDown(d decimal.Decimal, places int32) decimal.Decimal {
	t := d.Truncate(places)
	rest := d.Sub(t).Abs()
	if rest.GreaterThan(decimal.New(5, -(places + 1))) {
		step := decimal.New(1, -places)
		if d.Sign() < 0 {
			return t.Sub(step)
		}
		return t.Add(step)
	}
	return t
}

// DivHalfDown returns a/b with places fractional digits, ties go toward zero.
// It panics if b is zero.
func DivHalfDown(a, b decimal.Decimal, places int32) decimal.Decimal {
	q, r := a.QuoRem(b, places)
	// q is truncated toward zero, |r| < |b|·10^-places
	unit := b.Abs().Mul(decimal.New(1, -places))
	if r.Abs().Mul(decimal.NewFromInt(2)).GreaterThan(unit) {
		step := decimal.New(1, -places)
		if a.Sign()*b.Sign() < 0 {
			return q.Sub(step)
		}
		return q.Add(step)
	}
	return q
}

// Inverse returns 1/rate with RatePrecision fractional digits.
func Inverse(rate decimal.Decimal) decimal.Decimal {
	return DivHalfDown(one, rate, RatePrecision)
}

// ParseRate parses an exchange rate like "1,1987", it must be strictly positive.
func ParseRate(s string) (decimal.Decimal, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: exchange rate %q must be positive", ErrMalformedAmount, s)
	}
	return d, nil
}

// OrientRate returns the rate to cache for a document settled in settlement currency.
//
// stated is quoted in fx currency, as "EUR / USD 1,1987" followed by a value in USD.
// The cached rate is always the amount of foreign currency for one settlement unit, so the
// stated rate is inverted when fx is the settlement currency.
func OrientRate(stated decimal.Decimal, settlement, fx string) decimal.Decimal {
	if fx == settlement {
		return Inverse(stated)
	}
	return stated
}

// Convert converts amount into currency to using a cached rate (foreign units per settlement unit).
// The result is rounded half-down to the minor unit of to.
func Convert(amount Money, to string, rate decimal.Decimal) Money {
	v := amount.Decimal().Mul(Inverse(rate))
	return fromMajor(v, to, func(d decimal.Decimal) decimal.Decimal { return RoundHalfDown(d, 0) })
}
