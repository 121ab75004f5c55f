package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/25F1002767MONUSAHU/KiranaKhata/renderer"
)

type khataCmd struct{}

func (*khataCmd) Name() string     { return "khata" }
func (*khataCmd) Synopsis() string { return "show a customer's khata statement" }
func (*khataCmd) Usage() string {
	return `kk khata <customer>

  Shows one customer's khata: every credit and payment recorded against
  them, newest first, with the outstanding balance after each entry.
`
}

func (c *khataCmd) SetFlags(f *flag.FlagSet) {}

func (c *khataCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one customer reference is required.")
		return subcommands.ExitUsageError
	}

	book := LoadBook()
	cust, err := book.ResolveCustomer(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	st, err := book.Statement(cust.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderStatement(renderer.NewStatement(st)))
	return subcommands.ExitSuccess
}
