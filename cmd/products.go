package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/25F1002767MONUSAHU/KiranaKhata/renderer"
)

type productsCmd struct{}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the product catalog" }
func (*productsCmd) Usage() string {
	return `kk products

  Lists the product catalog, most recently added first.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()
	products := book.Products()
	if len(products) == 0 {
		fmt.Println("The catalog is empty.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Inventory(products))
	return subcommands.ExitSuccess
}
