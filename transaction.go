package khata

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TxType is a typed string for identifying transaction kinds.
type TxType string

// Transaction kinds recorded in the book.
const (
	// Credit is a purchase on udhaar: it increases the customer's
	// outstanding balance.
	Credit TxType = "credit"
	// Payment settles udhaar: it decreases the customer's outstanding
	// balance, clamped at zero.
	Payment TxType = "payment"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Credit:
		return Credit, nil
	case Payment:
		return Payment, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is one immutable entry of the store's transaction log.
//
// A transaction is never edited or deleted once recorded. CustomerID refers
// to the customer the entry was recorded against at the time; the book has
// no delete operation, so the reference cannot dangle in practice, but it is
// not re-verified after the fact.
type Transaction struct {
	ID          string    // The unique identifier of the transaction.
	CustomerID  string    // The customer the entry belongs to.
	Type        TxType    // Credit or Payment.
	Amount      Money     // Always positive.
	Description string    // Free text, e.g. "Rice 5kg".
	Time        time.Time // When the entry was recorded.
}

// Adjustment returns the signed effect of the transaction on the customer's
// outstanding balance: +Amount for a credit, -Amount for a payment.
func (t Transaction) Adjustment() Money {
	if t.Type == Payment {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks the transaction for correctness before it is recorded.
// An unknown customer id is deliberately not an error here: the log keeps
// the entry and the balance update is skipped (see Book.Record).
func (t Transaction) Validate() error {
	if t.CustomerID == "" {
		return errors.New("transaction customer id is missing")
	}
	if t.Type != Credit && t.Type != Payment {
		return fmt.Errorf("unknown transaction type: %q", t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("customer", t.CustomerID)
	w.Append("type", t.Type)
	w.EmbedFrom(t.Amount)
	w.Optional("description", t.Description)
	w.Append("time", t.Time.Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It handles the structure where amount and currency are separate fields.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string    `json:"id"`
		CustomerID  string    `json:"customer"`
		Type        TxType    `json:"type"`
		Description string    `json:"description"`
		Time        time.Time `json:"time"`
		moneyCmd
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.ID = temp.ID
	t.CustomerID = temp.CustomerID
	t.Type = temp.Type
	t.Description = temp.Description
	t.Time = temp.Time
	t.Amount = temp.Money()
	// a snapshot entry must satisfy the same rules Record enforces.
	return t.Validate()
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.CustomerID == o.CustomerID && t.Type == o.Type &&
		t.Amount.Equal(o.Amount) && t.Description == o.Description && t.Time.Equal(o.Time)
}

// ByCustomer returns a predicate that filters transactions by customer id.
func ByCustomer(id string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.CustomerID == id }
}

// ByType returns a predicate that filters transactions by kind.
func ByType(typ TxType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == typ }
}

// AcceptAll is a predicate that accepts every transaction.
func AcceptAll(Transaction) bool { return true }
