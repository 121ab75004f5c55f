package khata

// SeedBook returns the book used on first launch, or whenever the persisted
// snapshot is absent or unreadable: a small starter catalog and an empty
// customer list is not very welcoming, so a couple of sample khatas are
// included too.
func SeedBook() *Book {
	b := NewBook()
	seed := []struct {
		name     string
		price    float64
		category string
	}{
		{"Rice 5kg", 375, "Grocery"},
		{"Sugar 1kg", 45, "Grocery"},
		{"Sunflower Oil 1L", 140, "Grocery"},
		{"Tea 250g", 120, "Beverages"},
		{"Detergent Bar", 30, "Household"},
	}
	// walk backwards so the first seed item ends up first in the catalog
	for i := len(seed) - 1; i >= 0; i-- {
		s := seed[i]
		if _, err := b.AddProduct(s.name, Rupees(s.price), s.category); err != nil {
			// seed data is constant, an error here is a programming bug
			panic(err)
		}
	}
	for _, c := range []struct{ name, phone string }{
		{"Sita Devi", "9800000002"},
		{"Ramesh Kumar", "9800000001"},
	} {
		if _, err := b.AddCustomer(c.name, c.phone); err != nil {
			panic(err)
		}
	}
	return b
}
