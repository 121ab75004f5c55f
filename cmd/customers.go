package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/25F1002767MONUSAHU/KiranaKhata/renderer"
)

type customersCmd struct{}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list customers and their udhaar balances" }
func (*customersCmd) Usage() string {
	return `kk customers [query]

  Lists customers with their outstanding udhaar. An optional query filters
  by name or phone, case-insensitively.
`
}

func (c *customersCmd) SetFlags(f *flag.FlagSet) {}

func (c *customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := ""
	if f.NArg() > 0 {
		query = f.Arg(0)
	}

	book := LoadBook()
	found := book.FindCustomers(query)
	if len(found) == 0 {
		fmt.Printf("No customers match %q.\n", query)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Customers(found))
	return subcommands.ExitSuccess
}
