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

type logCmd struct {
	head int
	typ  string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list transactions, newest first" }
func (*logCmd) Usage() string {
	return `kk log [-head <n>] [-type credit|payment]

  Lists the transaction log, most recent first, with options for limiting
  and filtering the output.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.StringVar(&c.typ, "type", "", "Show only transactions of this type (credit, payment).")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()

	filter := khata.AcceptAll
	if c.typ != "" {
		typ, err := khata.ParseTxType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filter = khata.ByType(typ)
	}

	var transactions []khata.Transaction
	for _, tx := range book.Transactions(filter) {
		transactions = append(transactions, tx)
	}
	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions recorded yet.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Transactions(book, transactions))
	return subcommands.ExitSuccess
}
