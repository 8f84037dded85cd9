package pdfimport

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// EncodeTransactions writes transactions to w in JSONL format, one transaction per line.
func EncodeTransactions(w io.Writer, txs []*Transaction) error {
	bw := bufio.NewWriter(w)
	for _, tx := range txs {
		b, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("could not encode %s transaction: %w", tx.Kind, err)
		}
		bw.Write(b)
		bw.WriteString("\n")
	}
	return bw.Flush()
}
