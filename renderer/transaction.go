package renderer

import (
	"fmt"
	"strings"

	khata "github.com/25F1002767MONUSAHU/KiranaKhata"
)

// Transaction renders a single transaction to a one-line string.
func Transaction(b *khata.Book, tx khata.Transaction) string {
	name := tx.CustomerID
	if c := b.Customer(tx.CustomerID); c != nil {
		name = c.Name
	}
	desc := ""
	if tx.Description != "" {
		desc = fmt.Sprintf(" (%s)", tx.Description)
	}
	switch tx.Type {
	case khata.Credit:
		return fmt.Sprintf("%s took %s on udhaar%s", name, tx.Amount, desc)
	case khata.Payment:
		return fmt.Sprintf("%s paid %s%s", name, tx.Amount, desc)
	default:
		return string(tx.Type)
	}
}

// Transactions renders the transaction log as a markdown table.
func Transactions(b *khata.Book, txs []khata.Transaction) string {
	var sb strings.Builder
	sb.WriteString("| Date | Customer | Type | Amount | Description |\n")
	sb.WriteString("|---|---|---|---:|---|\n")
	for _, tx := range txs {
		row := newTxRow(b, tx)
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			row.Date, row.Customer, row.Kind, row.Amount, row.Description)
	}
	return sb.String()
}

// Inventory renders the product catalog as a markdown table.
func Inventory(products []khata.Product) string {
	var sb strings.Builder
	sb.WriteString("| Product | Category | Price |\n")
	sb.WriteString("|---|---|---:|\n")
	for _, p := range products {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", p.Name, p.Category, p.Price)
	}
	return sb.String()
}

// Customers renders the customer list as a markdown table.
func Customers(customers []khata.Customer) string {
	var sb strings.Builder
	sb.WriteString("| Customer | Phone | Udhaar | Last Updated |\n")
	sb.WriteString("|---|---|---:|---|\n")
	for _, c := range customers {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			c.Name, c.Phone, c.Balance, c.LastUpdated.Format("2006-01-02"))
	}
	return sb.String()
}
