package pdfimport

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/pdfimport/date"
	"github.com/shopspring/decimal"
)

var (
	// ErrMalformedAmount is returned for numbers that do not follow the comma decimal notation.
	ErrMalformedAmount = errors.New("malformed amount")
	// ErrMalformedDate is returned for dates and times that cannot be parsed.
	ErrMalformedDate = errors.New("malformed date")
	// ErrMalformedCurrency is returned for unknown or badly formatted currency codes.
	ErrMalformedCurrency = errors.New("malformed currency")
)

// amountRegex is the German notation: dot thousands separator, comma decimal separator.
var amountRegex = regexp.MustCompile(`^(\d{1,3}(\.\d{3})+|\d+)(,\d+)?$`)

// currencyCodeRegex checks for the format: 3 uppercase letters.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ParseDecimal parses a number printed as "1.234,5678" with an optional leading minus sign.
func ParseDecimal(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	digits, neg := strings.CutPrefix(raw, "-")
	if !amountRegex.MatchString(digits) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	digits = strings.ReplaceAll(digits, ".", "")
	digits = strings.Replace(digits, ",", ".", 1)
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %w", ErrMalformedAmount, s, err)
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

// ParseAmount parses s into minor units of currency.
// Digits beyond the currency fraction are rounded half-up.
func ParseAmount(s, currency string) (int64, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return 0, err
	}
	return d.Shift(fraction(currency)).Round(0).IntPart(), nil
}

// ParseMoney is ParseAmount returning a Money.
func ParseMoney(s, currency string) (Money, error) {
	a, err := ParseAmount(s, currency)
	if err != nil {
		return Money{}, err
	}
	return M(a, currency), nil
}

// FormatAmount formats minor units of currency the way ParseAmount reads them: 193017 EUR is "1.930,17".
func FormatAmount(minor int64, currency string) string {
	f := fraction(currency)
	str := decimal.New(minor, -f).Abs().StringFixed(f)
	intPart, fracPart, _ := strings.Cut(str, ".")

	var b strings.Builder
	if minor < 0 {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// ParseShares parses a share count like "7,1535".
func ParseShares(s string) (Quantity, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return Quantity{}, err
	}
	return Q(d), nil
}

// ParseCurrency validates a three letter currency code, case is ignored.
func ParseCurrency(s string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if !currencyCodeRegex.MatchString(code) || money.GetCurrency(code) == nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedCurrency, s)
	}
	return code, nil
}

// ParseDateTime parses a "dd.mm.yyyy" day and an optional "hh:mm[:ss]" clock.
func ParseDateTime(day, clock string) (date.DateTime, error) {
	dt, err := date.ParseGermanDateTime(strings.TrimSpace(day), strings.TrimSpace(clock))
	if err != nil {
		return date.DateTime{}, fmt.Errorf("%w: %w", ErrMalformedDate, err)
	}
	return dt, nil
}
