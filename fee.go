package pdfimport

import "github.com/shopspring/decimal"

// feePrecision is the number of digits kept for intermediate fee computations.
const feePrecision = 20

var hundred = decimal.NewFromInt(100)

// PercentageFee computes the net issue surcharge contained in principal.
//
// Funds are bought at a price including a surcharge of surchargePct percent, partially
// rebated to the customer (rebatePct percent of the surcharge). The fee is
//
//	base   = principal / (1 + surcharge/100)
//	gross  = base × surcharge/100
//	fee    = gross − gross × rebate/100
//
// rounded half-up to the minor unit of the principal currency.
func PercentageFee(principal Money, rebatePct, surchargePct decimal.Decimal) Money {
	s := surchargePct.DivRound(hundred, feePrecision)
	r := rebatePct.DivRound(hundred, feePrecision)

	base := principal.Decimal().DivRound(one.Add(s), feePrecision)
	gross := base.Mul(s)
	fee := gross.Sub(gross.Mul(r))
	return fromMajor(fee, principal.Currency(), func(d decimal.Decimal) decimal.Decimal { return d.Round(0) })
}
