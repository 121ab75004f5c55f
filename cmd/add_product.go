package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	khata "github.com/25F1002767MONUSAHU/KiranaKhata"
)

type addProductCmd struct {
	name     string
	price    string
	category string
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "add a new product to the catalog" }
func (*addProductCmd) Usage() string {
	return `kk add-product -name <name> -price <price> [-category <category>]

  Adds a new product to the catalog:
  - name: The display name of the product (e.g., "Rice 5kg"). Required.
  - price: The unit price in rupees (e.g., "375" or "37.50"). Required.
  - category: A free-form category (e.g., "Grocery").

  Products are immutable once added; there is no edit or delete.
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (required)")
	f.StringVar(&c.price, "price", "", "Unit price in rupees (required)")
	f.StringVar(&c.category, "category", "", "Free-form category")
}

func (c *addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -price flags are required.")
		return subcommands.ExitUsageError
	}

	price, err := khata.ParsePrice(c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	book := LoadBook()
	p, err := book.AddProduct(c.name, price, c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving book:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s (%s) at %s\n", p.Name, p.Category, p.Price)
	return subcommands.ExitSuccess
}
