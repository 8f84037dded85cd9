// Package renderer renders extraction results as markdown.
package renderer

import (
	"fmt"

	"github.com/etnz/pdfimport"
)

// Transaction renders a transaction to a string.
func Transaction(tx *pdfimport.Transaction) string {
	amount := tx.MonetaryAmount()
	switch tx.Kind {
	case pdfimport.KindBuy:
		return fmt.Sprintf("Bought %s of %s for %s", tx.Shares, tx.Security, amount)
	case pdfimport.KindSell:
		return fmt.Sprintf("Sold %s of %s for %s", tx.Shares, tx.Security, amount)
	case pdfimport.KindDividend:
		return fmt.Sprintf("Dividend of %s for %s", amount, tx.Security)
	case pdfimport.KindTaxRefund:
		return fmt.Sprintf("Tax refund of %s for %s", amount, tx.Security)
	case pdfimport.KindInterest:
		return fmt.Sprintf("Interest of %s", amount)
	case pdfimport.KindFee:
		return fmt.Sprintf("Fee of %s", amount)
	case pdfimport.KindTax:
		return fmt.Sprintf("Tax of %s", amount)
	default:
		return string(tx.Kind)
	}
}
