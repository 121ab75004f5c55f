// Package cmd implements the CLI application to keep the store's books.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	khata "github.com/25F1002767MONUSAHU/KiranaKhata"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addProductCmd{}, "catalog")
	c.Register(&productsCmd{}, "catalog")

	c.Register(&addCustomerCmd{}, "khata")
	c.Register(&customersCmd{}, "khata")
	c.Register(&khataCmd{}, "khata")

	c.Register(&creditCmd{}, "transactions")
	c.Register(&paymentCmd{}, "transactions")
	c.Register(&logCmd{}, "transactions")
	c.Register(&scanCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&topicCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the data directory holding the book snapshot")

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kirana"
	}
	return filepath.Join(home, ".kirana")
}

// LoadBook opens the book from the app data directory. A missing or corrupt
// snapshot silently yields the seed book (logged by the store).
func LoadBook() *khata.Book {
	return khata.NewStore(*dataDir).Load()
}

// SaveBook writes the whole book back under the fixed storage key.
func SaveBook(b *khata.Book) error {
	return khata.NewStore(*dataDir).Save(b)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
