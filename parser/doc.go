// Package parser is a declarative engine extracting transactions from text documents.
//
// A vendor describes its layouts as data:
//
//	Extractor      bank identifiers and document types
//	DocumentType   marker patterns telling whether the layout applies
//	Block          a start pattern cutting the document into regions
//	Template       the sections applied to each region to build one transaction
//	Section        ordered patterns capturing named values, and an assignment
//
// New seals the rule table. Parse creates a fresh Context for each applicable document type,
// runs each Block over the document, and returns the transactions along with Diagnostics
// describing what matched and what failed. A failing section only aborts the template run of
// its own region.
package parser
