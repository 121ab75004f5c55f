package khata

import (
	"fmt"
	"time"
)

// INR is a helper for tests to create rupee money from const.
func INR(v float64) Money { return Rupees(v) }

// newTestBook returns a book with a deterministic clock and id sequence so
// tests can assert on ids and ordering.
func newTestBook() *Book {
	b := NewBook()
	var n int
	b.newID = func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
	t0 := time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time {
		t0 = t0.Add(time.Minute)
		return t0
	}
	return b
}

// mustCustomer adds a customer or fails loudly.
func mustCustomer(b *Book, name, phone string) Customer {
	c, err := b.AddCustomer(name, phone)
	if err != nil {
		panic(err)
	}
	return c
}
