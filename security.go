package pdfimport

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// isinRegex checks for the basic structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// wknRegex checks for the German Wertpapierkennnummer: 6 uppercase alphanumeric characters.
var wknRegex = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// ErrUnknownSecurity is returned by resolvers that cannot create securities on the fly.
var ErrUnknownSecurity = errors.New("unknown security")

// Security references the instrument a transaction is about.
type Security struct {
	Name     string `json:"name,omitempty"`
	ISIN     string `json:"isin,omitempty"`
	WKN      string `json:"wkn,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// String returns the most specific identifier of s.
func (s *Security) String() string {
	switch {
	case s == nil:
		return ""
	case s.ISIN != "":
		return s.ISIN
	case s.WKN != "":
		return s.WKN
	}
	return s.Name
}

// SecurityQuery holds whatever a document says about a security.
// Empty fields are unknown.
type SecurityQuery struct {
	Name     string
	ISIN     string
	WKN      string
	Currency string
}

// Validate checks the identifiers present in the query.
func (q SecurityQuery) Validate() error {
	if q.Name == "" && q.ISIN == "" && q.WKN == "" {
		return errors.New("security query: no name, isin or wkn")
	}
	if q.ISIN != "" {
		if err := ValidateISIN(q.ISIN); err != nil {
			return fmt.Errorf("security query: %w", err)
		}
	}
	if q.WKN != "" && !wknRegex.MatchString(q.WKN) {
		return fmt.Errorf("security query: invalid wkn %q: must be 6 uppercase alphanumeric chars", q.WKN)
	}
	return nil
}

// Security returns a new Security made of the query fields.
func (q SecurityQuery) Security() *Security {
	return &Security{Name: q.Name, ISIN: q.ISIN, WKN: q.WKN, Currency: q.Currency}
}

// Resolver finds the security described by a query, or creates it.
type Resolver interface {
	Resolve(q SecurityQuery) (*Security, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(q SecurityQuery) (*Security, error)

func (f ResolverFunc) Resolve(q SecurityQuery) (*Security, error) { return f(q) }

// ValidateISIN checks if a string is a validly formatted ISIN.
// It returns nil if valid, or a descriptive error if invalid.
func ValidateISIN(isin string) error {
	// 1. Length validation
	if len(isin) != 12 {
		return fmt.Errorf("invalid length: must be 12 characters, got %d", len(isin))
	}

	// 2. Format validation
	if !isinRegex.MatchString(isin) {
		return fmt.Errorf("invalid format: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit")
	}

	// 3. Convert letters to numbers for check digit calculation
	var numericStr strings.Builder
	for _, char := range isin[:11] {
		if char >= 'A' && char <= 'Z' {
			numericStr.WriteString(strconv.Itoa(int(char - 'A' + 10)))
		} else {
			numericStr.WriteRune(char)
		}
	}

	// 4. Apply a variation of the Luhn algorithm
	sum := 0
	isSecond := true
	digits := numericStr.String()
	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')
		if isSecond {
			digit *= 2
		}
		sum += (digit / 10) + (digit % 10)
		isSecond = !isSecond
	}

	// 5. Validate the check digit
	expectedCheckDigit := (10 - (sum % 10)) % 10
	actualCheckDigit := int(isin[11] - '0')
	if expectedCheckDigit != actualCheckDigit {
		return fmt.Errorf("invalid check digit: expected %d, got %d", expectedCheckDigit, actualCheckDigit)
	}
	return nil
}
