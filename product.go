package khata

import "encoding/json"

// Product represents one entry of the store catalog, such as a bag of rice
// or a packet of tea.
//
// Products are immutable once added: there is no edit or delete operation,
// and the price on the product is the price suggested at billing time, not a
// stock-level record.
type Product struct {
	ID       string // The unique identifier of the product.
	Name     string // The display name, never empty.
	Price    Money  // The unit price, never negative.
	Category string // A free-form category, e.g. "Grocery".
}

// MarshalJSON implements the json.Marshaler interface for Product.
func (p Product) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.EmbedFrom(p.Price)
	w.Optional("category", p.Category)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Product.
// It handles the structure where amount and currency are separate fields.
func (p *Product) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		moneyCmd
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.ID = temp.ID
	p.Name = temp.Name
	p.Category = temp.Category
	p.Price = temp.Money()
	return nil
}

func (p Product) Equal(o Product) bool {
	return p.ID == o.ID && p.Name == o.Name && p.Category == o.Category && p.Price.Equal(o.Price)
}
