package khata

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The whole book is persisted as one JSON document:
//
//	{"products":[...],"customers":[...],"transactions":[...]}
//
// There is no schema version field inside the document; the storage key
// itself carries the version (see store.go).

// EncodeBook serializes the full book to w as a single JSON document, with
// the transaction log in its canonical most-recent-first order.
func EncodeBook(w io.Writer, b *Book) error {
	decimal.MarshalJSONWithoutQuotes = true
	b.stableSort()

	var obj jsonObjectWriter
	obj.Append("products", b.products)
	obj.Append("customers", b.customers)
	obj.Append("transactions", b.transactions)
	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode book: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write book: %w", err)
	}
	return nil
}

// DecodeBook deserializes a book from a single JSON document. Any malformed
// content is an error for the caller to translate into a fallback; DecodeBook
// itself never panics on bad input.
func DecodeBook(r io.Reader) (*Book, error) {
	var temp struct {
		Products     []Product     `json:"products"`
		Customers    []Customer    `json:"customers"`
		Transactions []Transaction `json:"transactions"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&temp); err != nil {
		return nil, fmt.Errorf("could not decode book: %w", err)
	}

	b := NewBook()
	if temp.Products != nil {
		b.products = temp.Products
	}
	if temp.Customers != nil {
		b.customers = temp.Customers
	}
	if temp.Transactions != nil {
		b.transactions = temp.Transactions
	}
	// Do not trust the stored order.
	b.stableSort()
	return b, nil
}
