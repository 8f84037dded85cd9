// Package pdfimport provides the domain model and the value normalization used to turn bank and
// broker documents into transactions.
//
// The documents are trade confirmations and account statements already converted from PDF to
// plain text lines. Extraction itself is driven by declarative rule sets (see package parser and
// the vendor packages such as sbroker); this package holds what those rule sets produce and the
// arithmetic they rely on:
//   - Money: a currency code and an integer amount of minor units (cents).
//   - Transaction: the single output record (buy, sell, dividend, tax refund, ...) carrying
//     a settlement amount, a security reference, a share count and decomposition Units.
//   - Unit: a tax, a fee, or a gross value with its foreign currency counterpart.
//   - Normalizers: parsing of comma-decimal amounts, dates, exchange rates, and the half-down
//     rounding used for currency conversion.
package pdfimport
