package khata

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book is the aggregate state of the store: the product catalog, the
// customer list and the transaction log.
//
// Transactions are always kept most-recent-first; that ordering is an
// invariant consumed by every view of the log. The book itself is not safe
// for concurrent use: there is exactly one writer, the active session.
type Book struct {
	products     []Product
	customers    []Customer
	transactions []Transaction // most-recent-first
	now          func() time.Time
	newID        func() string
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{
		products:     make([]Product, 0),
		customers:    make([]Customer, 0),
		transactions: make([]Transaction, 0),
	}
}

func (b *Book) clock() time.Time {
	if b.now != nil {
		return b.now()
	}
	return time.Now()
}

func (b *Book) id() string {
	if b.newID != nil {
		return b.newID()
	}
	return uuid.NewString()
}

// AddProduct creates a new product with a fresh id and prepends it to the
// catalog. The name must not be empty and the price must not be negative;
// parsing of user-typed text into a price happens before this call, in
// ParsePrice.
func (b *Book) AddProduct(name string, price Money, category string) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, errors.New("product name is missing")
	}
	if price.IsNegative() {
		return Product{}, fmt.Errorf("product price must not be negative, got %s", price)
	}
	p := Product{
		ID:       b.id(),
		Name:     name,
		Price:    price,
		Category: strings.TrimSpace(category),
	}
	b.products = append([]Product{p}, b.products...)
	return p, nil
}

// AddCustomer creates a new customer with a fresh id, a zero balance and
// LastUpdated set to now, and prepends it to the customer list. There is no
// uniqueness constraint on name or phone.
func (b *Book) AddCustomer(name, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, errors.New("customer name is missing")
	}
	c := Customer{
		ID:          b.id(),
		Name:        name,
		Phone:       strings.TrimSpace(phone),
		Balance:     Rupees(0),
		LastUpdated: b.clock(),
	}
	b.customers = append([]Customer{c}, b.customers...)
	return c, nil
}

// Record creates a transaction against a customer and applies its effect to
// the customer's outstanding balance, all in one synchronous state change.
//
// The new balance is max(0, old + adjustment): a payment larger than the
// outstanding balance settles the khata at zero, it never produces a credit
// in the customer's favor. A payment of 500 against a balance of 300 yields
// 0, not -200. This is the one business rule of the whole book and must be
// preserved exactly.
//
// If no customer matches customerID the transaction is still recorded and
// the balance update is skipped with a log line. The book has no delete
// operation, so this cannot happen through the command layer.
func (b *Book) Record(customerID string, typ TxType, amount Money, description string) (Transaction, error) {
	tx := Transaction{
		ID:          b.id(),
		CustomerID:  customerID,
		Type:        typ,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Time:        b.clock(),
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}

	// most-recent-first
	b.transactions = append([]Transaction{tx}, b.transactions...)

	i := b.customerIndex(customerID)
	if i < 0 {
		log.Printf("transaction %s recorded against unknown customer %q, balance unchanged", tx.ID, customerID)
		return tx, nil
	}
	b.customers[i].Balance = b.customers[i].Balance.Add(tx.Adjustment()).ClampZero()
	b.customers[i].LastUpdated = tx.Time
	return tx, nil
}

func (b *Book) customerIndex(id string) int {
	for i := range b.customers {
		if b.customers[i].ID == id {
			return i
		}
	}
	return -1
}

// Customer returns the customer with this id, or nil if unknown.
func (b *Book) Customer(id string) *Customer {
	i := b.customerIndex(id)
	if i < 0 {
		return nil
	}
	c := b.customers[i]
	return &c
}

// FindCustomers returns the customers whose name or phone contains the
// query, case-insensitively. An empty query matches everyone. The scan is
// linear, the list is small.
func (b *Book) FindCustomers(query string) []Customer {
	query = strings.ToLower(strings.TrimSpace(query))
	var found []Customer
	for _, c := range b.customers {
		if query == "" ||
			strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(c.Phone, query) {
			found = append(found, c)
		}
	}
	return found
}

// ResolveCustomer resolves a user-typed reference to exactly one customer:
// an id, an id prefix, or a case-insensitive name match. It errs when the
// reference is ambiguous or matches nothing.
func (b *Book) ResolveCustomer(ref string) (*Customer, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New("customer reference is missing")
	}
	if c := b.Customer(ref); c != nil {
		return c, nil
	}
	var matches []Customer
	for _, c := range b.customers {
		if strings.HasPrefix(c.ID, ref) || strings.EqualFold(c.Name, ref) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("could not find customer %q", ref)
	case 1:
		c := matches[0]
		return &c, nil
	default:
		return nil, fmt.Errorf("multiple customers match %q", ref)
	}
}

// Products returns the catalog, most recently added first.
func (b *Book) Products() []Product {
	return append([]Product(nil), b.products...)
}

// Customers returns the customer list, most recently added first.
func (b *Book) Customers() []Customer {
	return append([]Customer(nil), b.customers...)
}

// Transactions returns an iterator that yields each transaction in log
// order, most-recent-first, keeping only those accepted by at least one
// filter.
func (b *Book) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range b.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// TotalOutstanding sums the outstanding balance over all customers.
func (b *Book) TotalOutstanding() Money {
	total := Rupees(0)
	for _, c := range b.customers {
		total = total.Add(c.Balance)
	}
	return total
}

// stableSort keeps the transaction log most-recent-first. The sort is
// stable, entries recorded at the same instant keep their relative order.
func (b *Book) stableSort() {
	sort.SliceStable(b.transactions, func(i, j int) bool {
		return b.transactions[i].Time.After(b.transactions[j].Time)
	})
}
