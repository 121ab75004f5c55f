package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	khata "github.com/25F1002767MONUSAHU/KiranaKhata"
	"github.com/25F1002767MONUSAHU/KiranaKhata/renderer"
)

type creditCmd struct {
	amount string
	desc   string
}

func (*creditCmd) Name() string     { return "credit" }
func (*creditCmd) Synopsis() string { return "record a purchase on udhaar" }
func (*creditCmd) Usage() string {
	return `kk credit <customer> -amount <amount> [-desc <description>]

  Records a purchase on udhaar against a customer's khata, increasing their
  outstanding balance. The customer may be given by id, id prefix or name.
`
}

func (c *creditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount in rupees (required)")
	f.StringVar(&c.desc, "desc", "", "Description of the purchase")
}

func (c *creditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(f, khata.Credit, c.amount, c.desc)
}

// record is the shared implementation of the credit and payment commands.
func record(f *flag.FlagSet, typ khata.TxType, amount, desc string) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one customer reference is required.")
		return subcommands.ExitUsageError
	}
	if amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount flag is required.")
		return subcommands.ExitUsageError
	}
	m, err := khata.ParseAmount(amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	book := LoadBook()
	cust, err := book.ResolveCustomer(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	tx, err := book.Record(cust.ID, typ, m, desc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving book:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(book, tx))
	if after := book.Customer(cust.ID); after != nil {
		fmt.Printf("Outstanding udhaar for %s: %s\n", after.Name, after.Balance)
	}
	return subcommands.ExitSuccess
}
