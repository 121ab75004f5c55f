package khata

import (
	"strings"
	"testing"
)

func TestBook_Record_ClampAtZero(t *testing.T) {
	// For any sequence of recorded transactions, the balance after each one
	// equals max(0, sum of adjustments so far).
	testCases := []struct {
		name  string
		steps []struct {
			typ    TxType
			amount float64
		}
		wantBalances []float64
	}{
		{
			name: "credit increases the balance",
			steps: []struct {
				typ    TxType
				amount float64
			}{
				{Credit, 120},
			},
			wantBalances: []float64{120},
		},
		{
			name: "payment decreases the balance",
			steps: []struct {
				typ    TxType
				amount float64
			}{
				{Credit, 450},
				{Payment, 200},
			},
			wantBalances: []float64{450, 250},
		},
		{
			name: "exact payment settles at zero",
			steps: []struct {
				typ    TxType
				amount float64
			}{
				{Credit, 450},
				{Payment, 450},
				{Payment, 100},
			},
			wantBalances: []float64{450, 0, 0},
		},
		{
			name: "overpayment is absorbed, never negative",
			steps: []struct {
				typ    TxType
				amount float64
			}{
				{Credit, 300},
				{Payment, 500},
				{Credit, 50},
			},
			wantBalances: []float64{300, 0, 50},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBook()
			c := mustCustomer(b, "Ramesh Kumar", "9800000001")

			for i, step := range tc.steps {
				if _, err := b.Record(c.ID, step.typ, INR(step.amount), ""); err != nil {
					t.Fatalf("Record() step %d returned an unexpected error: %v", i, err)
				}
				got := b.Customer(c.ID).Balance
				if want := INR(tc.wantBalances[i]); !got.Equal(want) {
					t.Errorf("balance after step %d = %s, want %s", i, got, want)
				}
			}
		})
	}
}

func TestBook_Record_FirstEntryIsNewest(t *testing.T) {
	b := newTestBook()
	c := mustCustomer(b, "Sita Devi", "")

	tx1, err := b.Record(c.ID, Credit, INR(120), "Rice")
	if err != nil {
		t.Fatalf("Record() returned an unexpected error: %v", err)
	}

	// after one credit, the first log entry is that credit and the balance
	// equals its amount.
	var first Transaction
	for _, tx := range b.Transactions(AcceptAll) {
		first = tx
		break
	}
	if first.ID != tx1.ID || first.Type != Credit || !first.Amount.Equal(INR(120)) {
		t.Fatalf("first log entry = %+v, want the recorded credit of 120", first)
	}
	if got := b.Customer(c.ID).Balance; !got.Equal(INR(120)) {
		t.Errorf("balance = %s, want %s", got, INR(120))
	}

	// every further record moves to the front of the log.
	ids := []string{tx1.ID}
	for _, amount := range []float64{30, 45, 10} {
		tx, err := b.Record(c.ID, Credit, INR(amount), "")
		if err != nil {
			t.Fatalf("Record() returned an unexpected error: %v", err)
		}
		ids = append(ids, tx.ID)

		var got Transaction
		for _, cur := range b.Transactions(AcceptAll) {
			got = cur
			break
		}
		if got.ID != tx.ID {
			t.Errorf("first log entry is %s, want the latest transaction %s", got.ID, tx.ID)
		}
	}

	// and the full log is the exact reverse of the recording order.
	var logged []string
	for _, tx := range b.Transactions(AcceptAll) {
		logged = append(logged, tx.ID)
	}
	for i := range ids {
		if logged[i] != ids[len(ids)-1-i] {
			t.Fatalf("log order = %v, want reverse of %v", logged, ids)
		}
	}
}

func TestBook_Record_UnknownCustomer(t *testing.T) {
	b := newTestBook()
	c := mustCustomer(b, "Ramesh Kumar", "")
	before := b.Customer(c.ID).Balance

	// the transaction is recorded, the balance update is silently skipped.
	tx, err := b.Record("no-such-id", Credit, INR(75), "")
	if err != nil {
		t.Fatalf("Record() returned an unexpected error: %v", err)
	}

	count := 0
	for _, cur := range b.Transactions(ByCustomer("no-such-id")) {
		if cur.ID != tx.ID {
			t.Errorf("logged transaction id = %s, want %s", cur.ID, tx.ID)
		}
		count++
	}
	if count != 1 {
		t.Fatalf("logged %d transactions for the unknown customer, want 1", count)
	}
	if got := b.Customer(c.ID).Balance; !got.Equal(before) {
		t.Errorf("existing customer balance changed to %s, want untouched %s", got, before)
	}
}

func TestBook_Record_Invalid(t *testing.T) {
	b := newTestBook()
	c := mustCustomer(b, "Ramesh Kumar", "")

	testCases := []struct {
		name       string
		customerID string
		typ        TxType
		amount     Money
	}{
		{"zero amount", c.ID, Credit, INR(0)},
		{"negative amount", c.ID, Payment, INR(-10)},
		{"unknown type", c.ID, TxType("refund"), INR(10)},
		{"missing customer id", "", Credit, INR(10)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := b.Record(tc.customerID, tc.typ, tc.amount, ""); err == nil {
				t.Errorf("Record(%q, %q, %s) did not return an error", tc.customerID, tc.typ, tc.amount)
			}
		})
	}
	for range b.Transactions(AcceptAll) {
		t.Fatal("invalid records must not reach the log")
	}
}

func TestBook_AddProduct(t *testing.T) {
	b := newTestBook()

	p, err := b.AddProduct("Rice 5kg", INR(375), "Grocery")
	if err != nil {
		t.Fatalf("AddProduct() returned an unexpected error: %v", err)
	}

	products := b.Products()
	if len(products) != 1 {
		t.Fatalf("catalog has %d products, want 1", len(products))
	}
	got := products[0]
	if got.Name != "Rice 5kg" || got.Category != "Grocery" || !got.Price.Equal(INR(375)) {
		t.Errorf("catalog entry = %+v, want the added product", got)
	}
	if got.ID == "" {
		t.Error("product id is empty")
	}

	// a second product gets a fresh id and lands in front.
	q, err := b.AddProduct("Sugar 1kg", INR(45), "Grocery")
	if err != nil {
		t.Fatalf("AddProduct() returned an unexpected error: %v", err)
	}
	if q.ID == p.ID {
		t.Errorf("second product reused id %s", p.ID)
	}
	if first := b.Products()[0]; first.ID != q.ID {
		t.Errorf("first catalog entry is %s, want the latest product %s", first.ID, q.ID)
	}
}

func TestBook_AddProduct_Invalid(t *testing.T) {
	b := newTestBook()
	if _, err := b.AddProduct("  ", INR(10), ""); err == nil {
		t.Error("AddProduct with a blank name did not return an error")
	}
	if _, err := b.AddProduct("Rice", INR(-1), ""); err == nil {
		t.Error("AddProduct with a negative price did not return an error")
	}
}

func TestBook_AddCustomer(t *testing.T) {
	b := newTestBook()

	c, err := b.AddCustomer("Ramesh Kumar", "9800000001")
	if err != nil {
		t.Fatalf("AddCustomer() returned an unexpected error: %v", err)
	}
	if !c.Balance.IsZero() {
		t.Errorf("new customer balance = %s, want zero", c.Balance)
	}
	if c.LastUpdated.IsZero() {
		t.Error("new customer LastUpdated is zero")
	}

	// duplicate names are allowed, ids still differ.
	d, err := b.AddCustomer("Ramesh Kumar", "9800000001")
	if err != nil {
		t.Fatalf("AddCustomer() returned an unexpected error: %v", err)
	}
	if d.ID == c.ID {
		t.Errorf("duplicate customer reused id %s", c.ID)
	}

	if _, err := b.AddCustomer("", ""); err == nil {
		t.Error("AddCustomer with an empty name did not return an error")
	}
}

func TestBook_FindCustomers(t *testing.T) {
	b := newTestBook()
	mustCustomer(b, "Ramesh Kumar", "9800000001")
	mustCustomer(b, "Sita Devi", "9800000002")
	mustCustomer(b, "Ramesh Yadav", "9811111111")

	testCases := []struct {
		query string
		want  int
	}{
		{"ramesh", 2},
		{"RAMESH KUMAR", 1},
		{"9800000002", 1},
		{"", 3},
		{"nobody", 0},
	}
	for _, tc := range testCases {
		t.Run("query "+tc.query, func(t *testing.T) {
			if got := b.FindCustomers(tc.query); len(got) != tc.want {
				t.Errorf("FindCustomers(%q) returned %d customers, want %d", tc.query, len(got), tc.want)
			}
		})
	}
}

func TestBook_ResolveCustomer(t *testing.T) {
	b := NewBook()
	ids := []string{"rk-4211", "sd-7742"}
	b.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	c1 := mustCustomer(b, "Ramesh Kumar", "")
	mustCustomer(b, "Sita Devi", "")

	if got, err := b.ResolveCustomer(c1.ID); err != nil || got.ID != c1.ID {
		t.Errorf("ResolveCustomer(full id) = %v, %v, want %s", got, err, c1.ID)
	}
	if got, err := b.ResolveCustomer("rk-"); err != nil || got.ID != c1.ID {
		t.Errorf("ResolveCustomer(id prefix) = %v, %v, want %s", got, err, c1.ID)
	}
	if got, err := b.ResolveCustomer("ramesh kumar"); err != nil || got.ID != c1.ID {
		t.Errorf("ResolveCustomer(name) = %v, %v, want %s", got, err, c1.ID)
	}
	if _, err := b.ResolveCustomer("nobody"); err == nil {
		t.Error("ResolveCustomer(unknown) did not return an error")
	}

	// two customers with the same name make a name reference ambiguous.
	b.newID = func() string { return "rk-9999" }
	mustCustomer(b, "Ramesh Kumar", "")
	if _, err := b.ResolveCustomer("Ramesh Kumar"); err == nil || !strings.Contains(err.Error(), "multiple") {
		t.Errorf("ResolveCustomer(ambiguous name) = %v, want a multiple-match error", err)
	}
}

func TestBook_TotalOutstanding(t *testing.T) {
	b := newTestBook()
	c1 := mustCustomer(b, "Ramesh Kumar", "")
	c2 := mustCustomer(b, "Sita Devi", "")

	b.Record(c1.ID, Credit, INR(120), "")
	b.Record(c2.ID, Credit, INR(80), "")
	b.Record(c2.ID, Payment, INR(30), "")

	if got, want := b.TotalOutstanding(), INR(170); !got.Equal(want) {
		t.Errorf("TotalOutstanding() = %s, want %s", got, want)
	}
}

func TestSeedBook(t *testing.T) {
	b := SeedBook()
	if len(b.Products()) == 0 {
		t.Error("seed book has no products")
	}
	if len(b.Customers()) == 0 {
		t.Error("seed book has no customers")
	}
	for _, c := range b.Customers() {
		if !c.Balance.IsZero() {
			t.Errorf("seed customer %s starts with balance %s, want zero", c.Name, c.Balance)
		}
	}
	for range b.Transactions(AcceptAll) {
		t.Fatal("seed book must not contain transactions")
	}
}
