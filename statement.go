package khata

import "fmt"

// Statement is the khata of a single customer: every transaction recorded
// against them, most-recent-first, with the balance the khata stood at after
// each entry.
type Statement struct {
	Customer Customer
	Entries  []StatementEntry
}

// StatementEntry is one line of a customer statement.
type StatementEntry struct {
	Tx      Transaction
	Balance Money // outstanding balance right after this entry
}

// Statement replays the customer's transactions and returns their khata.
// The replay applies the same clamp-at-zero rule as Record, so the last
// entry's balance always equals the customer's current balance.
func (b *Book) Statement(customerID string) (*Statement, error) {
	c := b.Customer(customerID)
	if c == nil {
		return nil, fmt.Errorf("could not find customer %q", customerID)
	}

	// collect most-recent-first, then replay oldest-first
	var txs []Transaction
	for _, tx := range b.Transactions(ByCustomer(customerID)) {
		txs = append(txs, tx)
	}

	balance := Rupees(0)
	entries := make([]StatementEntry, len(txs))
	for i := len(txs) - 1; i >= 0; i-- {
		balance = balance.Add(txs[i].Adjustment()).ClampZero()
		entries[i] = StatementEntry{Tx: txs[i], Balance: balance}
	}

	return &Statement{Customer: *c, Entries: entries}, nil
}
