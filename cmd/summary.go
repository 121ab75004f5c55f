package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/25F1002767MONUSAHU/KiranaKhata/renderer"
)

type summaryCmd struct {
	recent int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the store dashboard" }
func (*summaryCmd) Usage() string {
	return `kk summary [-recent <n>]

  Displays the store dashboard: total outstanding udhaar, customer and
  catalog counts, and the latest transactions.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.recent, "recent", 5, "Number of recent transactions to show")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()
	printMarkdown(renderer.RenderSummary(renderer.NewSummary(book, c.recent)))
	return subcommands.ExitSuccess
}
