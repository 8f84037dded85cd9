package parser

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Well known context keys.
const (
	// KeyNegative is set while the current region is a refund: taxes are not charged.
	KeyNegative = "negative"
	// KeyExchangeRate holds the cached rate: foreign currency units for one settlement unit.
	KeyExchangeRate = "exchangeRate"
	// KeyWithholdingTaxFound is set once a strong withholding tax was added.
	KeyWithholdingTaxFound = "withholdingTaxFound"
	// KeyType holds a transaction kind decided in one region and read by the subject of a
	// later block, for layouts printing the kind apart from the record.
	KeyType = "type"
)

// Context is the mutable state shared by the template runs of one document type over one document.
type Context struct {
	values map[string]string
	log    zerolog.Logger
}

// NewContext returns an empty Context logging to log.
func NewContext(log zerolog.Logger) *Context {
	return &Context{values: make(map[string]string), log: log}
}

// Get returns the value for key.
func (c *Context) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Put sets the value for key.
func (c *Context) Put(key, value string) { c.values[key] = value }

// Remove deletes key.
func (c *Context) Remove(key string) { delete(c.values, key) }

// Has reports whether key is set.
func (c *Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Bool returns the boolean value of key, false when unset or not a boolean.
func (c *Context) Bool(key string) bool {
	b, _ := strconv.ParseBool(c.values[key])
	return b
}

// SetBool sets key to a boolean value.
func (c *Context) SetBool(key string, b bool) { c.values[key] = strconv.FormatBool(b) }

// ExchangeRate returns the cached exchange rate.
func (c *Context) ExchangeRate() (decimal.Decimal, bool) {
	v, ok := c.values[KeyExchangeRate]
	if !ok {
		return decimal.Zero, false
	}
	rate, err := decimal.NewFromString(v)
	if err != nil || !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}

// SetExchangeRate caches rate, already oriented as foreign units per settlement unit.
func (c *Context) SetExchangeRate(rate decimal.Decimal) { c.values[KeyExchangeRate] = rate.String() }

// Logger returns the document logger.
func (c *Context) Logger() *zerolog.Logger { return &c.log }
