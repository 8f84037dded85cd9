// Package sbroker extracts the trade confirmations and dividend notes of S Broker AG & Co. KG
// and of the Sparkassen.
package sbroker

import (
	"fmt"
	"strings"

	"github.com/etnz/pdfimport"
	"github.com/etnz/pdfimport/parser"
)

// Label is the vendor name.
const Label = "S Broker AG & Co. KG / Sparkasse"

// Identifiers are the bank identifiers found in the documents.
var Identifiers = []string{"S Broker AG & Co. KG", "Sparkasse"}

const (
	day    = `\d{2}\.\d{2}\.\d{4}`
	amount = `[\.,\d]+`
	cur    = `\w{3}`
)

// extractor holds what the assignments need beyond the captured values.
type extractor struct {
	resolver pdfimport.Resolver
}

// New returns the S Broker extractor. Securities are resolved with r, a nil r creates a new
// Security for each transaction.
func New(r pdfimport.Resolver) *parser.Extractor {
	x := &extractor{resolver: r}
	return parser.NewExtractor(Label, Identifiers...).
		AddDocumentType(x.buySell()).
		AddDocumentType(x.dividend())
}

// setSecurity resolves the security described by q.
// A query the resolver would reject, like a misprinted ISIN, keeps an unresolved Security.
func (x *extractor) setSecurity(t *pdfimport.Transaction, q pdfimport.SecurityQuery, ctx *parser.Context) error {
	q.Name = strings.TrimSpace(q.Name)
	if x.resolver == nil {
		t.Security = q.Security()
		return nil
	}
	if err := q.Validate(); err != nil {
		ctx.Logger().Debug().Err(err).Str("name", q.Name).Str("isin", q.ISIN).Msg("security not resolved")
		t.Security = q.Security()
		return nil
	}
	s, err := x.resolver.Resolve(q)
	if err != nil {
		return fmt.Errorf("could not resolve security %q: %w", q.Name, err)
	}
	t.Security = s
	return nil
}

// security assigns the name and isin captures.
func (x *extractor) security(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
	return x.setSecurity(t, pdfimport.SecurityQuery{Name: v["name"], ISIN: v["isin"]}, ctx)
}

func setAmount(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
	m, err := v.Money("amount", "currency")
	if err != nil {
		return err
	}
	t.SetMonetaryAmount(m)
	return nil
}

func setShares(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
	q, err := v.Shares("shares")
	if err != nil {
		return err
	}
	t.Shares = q
	return nil
}

func setDate(t *pdfimport.Transaction, v parser.Values, ctx *parser.Context) error {
	dt, err := v.DateTime("date", "time")
	if err != nil {
		return err
	}
	t.DateTime = dt
	return nil
}
