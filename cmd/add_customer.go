package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCustomerCmd struct {
	name  string
	phone string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "open a khata for a new customer" }
func (*addCustomerCmd) Usage() string {
	return `kk add-customer -name <name> [-phone <phone>]

  Opens a khata for a new customer with a zero balance:
  - name: The customer's name. Required.
  - phone: The customer's phone number.

  Names and phone numbers are not required to be unique; the generated id is.
`
}

func (c *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name (required)")
	f.StringVar(&c.phone, "phone", "", "Customer phone number")
}

func (c *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}

	book := LoadBook()
	cust, err := book.AddCustomer(c.name, c.phone)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving book:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Opened khata for %s (id %s)\n", cust.Name, cust.ID)
	return subcommands.ExitSuccess
}
