package parser

import (
	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/date"
	"github.com/shopspring/decimal"
)

// Values are the named values captured by a section.
type Values map[string]string

// Has reports whether name was captured.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Currency returns the currency code captured as name.
func (v Values) Currency(name string) (string, error) {
	return pdfimport.ParseCurrency(v[name])
}

// Money returns the amount captured as amount in the currency captured as currency.
func (v Values) Money(amount, currency string) (pdfimport.Money, error) {
	cur, err := v.Currency(currency)
	if err != nil {
		return pdfimport.Money{}, err
	}
	return pdfimport.ParseMoney(v[amount], cur)
}

// Shares returns the quantity captured as name.
func (v Values) Shares(name string) (pdfimport.Quantity, error) {
	return pdfimport.ParseShares(v[name])
}

// Decimal returns the number captured as name.
func (v Values) Decimal(name string) (decimal.Decimal, error) {
	return pdfimport.ParseDecimal(v[name])
}

// Rate returns the exchange rate captured as name.
func (v Values) Rate(name string) (decimal.Decimal, error) {
	return pdfimport.ParseRate(v[name])
}

// DateTime returns the day captured as day and the optional clock captured as clock.
func (v Values) DateTime(day, clock string) (date.DateTime, error) {
	return pdfimport.ParseDateTime(v[day], v[clock])
}

// Security returns the query made of the name, isin, wkn and currency values.
func (v Values) Security() pdfimport.SecurityQuery {
	return pdfimport.SecurityQuery{Name: v["name"], ISIN: v["isin"], WKN: v["wkn"], Currency: v["currency"]}
}
