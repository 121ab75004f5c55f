package renderer

import (
	khata "github.com/25F1002767MONUSAHU/KiranaKhata"
)

// Summary is the view model for the dashboard report.
type Summary struct {
	TotalOutstanding string
	CustomerCount    int
	ProductCount     int
	Recent           []TxRow
}

// Statement is the view model for one customer's khata report.
type Statement struct {
	Name    string
	Phone   string
	Balance string
	Entries []StatementRow
}

// TxRow is one rendered line of the transaction log.
type TxRow struct {
	Date        string
	Kind        string
	Amount      string
	Description string
	Customer    string
}

// StatementRow is one rendered line of a customer statement.
type StatementRow struct {
	Date        string
	Kind        string
	Amount      string
	Description string
	Balance     string
}

// NewSummary builds the dashboard view model from the book, keeping the
// latest `recent` transactions.
func NewSummary(b *khata.Book, recent int) *Summary {
	s := &Summary{
		TotalOutstanding: b.TotalOutstanding().String(),
		CustomerCount:    len(b.Customers()),
		ProductCount:     len(b.Products()),
	}
	for _, tx := range b.Transactions(khata.AcceptAll) {
		if len(s.Recent) >= recent {
			break
		}
		s.Recent = append(s.Recent, newTxRow(b, tx))
	}
	return s
}

// NewStatement builds the khata view model from a customer statement.
func NewStatement(st *khata.Statement) *Statement {
	v := &Statement{
		Name:    st.Customer.Name,
		Phone:   st.Customer.Phone,
		Balance: st.Customer.Balance.String(),
	}
	for _, e := range st.Entries {
		v.Entries = append(v.Entries, StatementRow{
			Date:        e.Tx.Time.Format("2006-01-02"),
			Kind:        kind(e.Tx.Type),
			Amount:      e.Tx.Amount.String(),
			Description: e.Tx.Description,
			Balance:     e.Balance.String(),
		})
	}
	return v
}

func newTxRow(b *khata.Book, tx khata.Transaction) TxRow {
	name := tx.CustomerID
	if c := b.Customer(tx.CustomerID); c != nil {
		name = c.Name
	}
	return TxRow{
		Date:        tx.Time.Format("2006-01-02"),
		Kind:        kind(tx.Type),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Customer:    name,
	}
}

func kind(t khata.TxType) string {
	switch t {
	case khata.Credit:
		return "Udhaar"
	case khata.Payment:
		return "Paid"
	default:
		return string(t)
	}
}
