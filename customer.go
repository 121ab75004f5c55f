package khata

import (
	"encoding/json"
	"time"
)

// Customer represents one khata holder: a customer of the store who may buy
// on credit and settle later.
//
// Balance is the outstanding credit (udhaar) the customer owes the store.
// It is never negative: a payment larger than the balance settles the khata
// at zero. Balance and LastUpdated only ever change through Book.Record.
type Customer struct {
	ID          string    // The unique identifier of the customer.
	Name        string    // The display name, never empty.
	Phone       string    // Free-form phone number, may be empty.
	Balance     Money     // Outstanding credit, always >= 0.
	LastUpdated time.Time // Time of the last recorded transaction.
}

// MarshalJSON implements the json.Marshaler interface for Customer.
func (c Customer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Optional("phone", c.Phone)
	w.EmbedFrom(c.Balance)
	w.Append("lastUpdated", c.LastUpdated.Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Customer.
func (c *Customer) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Phone       string    `json:"phone"`
		LastUpdated time.Time `json:"lastUpdated"`
		moneyCmd
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	c.ID = temp.ID
	c.Name = temp.Name
	c.Phone = temp.Phone
	c.LastUpdated = temp.LastUpdated
	c.Balance = temp.Money()
	return nil
}

func (c Customer) Equal(o Customer) bool {
	return c.ID == o.ID && c.Name == o.Name && c.Phone == o.Phone &&
		c.Balance.Equal(o.Balance) && c.LastUpdated.Equal(o.LastUpdated)
}
