package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	khata "github.com/25F1002767MONUSAHU/KiranaKhata"
)

type paymentCmd struct {
	amount string
	desc   string
}

func (*paymentCmd) Name() string     { return "payment" }
func (*paymentCmd) Synopsis() string { return "record a payment against a khata" }
func (*paymentCmd) Usage() string {
	return `kk payment <customer> -amount <amount> [-desc <description>]

  Records a payment against a customer's khata, decreasing their outstanding
  balance. A payment larger than the balance settles the khata at zero; the
  balance never goes negative.
`
}

func (c *paymentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount in rupees (required)")
	f.StringVar(&c.desc, "desc", "", "Description of the payment")
}

func (c *paymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return record(f, khata.Payment, c.amount, c.desc)
}
