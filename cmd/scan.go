package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	khata "github.com/25F1002767MONUSAHU/KiranaKhata"
	"github.com/25F1002767MONUSAHU/KiranaKhata/receipt"
	"github.com/25F1002767MONUSAHU/KiranaKhata/renderer"
)

type scanCmd struct {
	image    string
	customer string
	yes      bool
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "scan a receipt photo into a draft udhaar entry" }
func (*scanCmd) Usage() string {
	return `kk scan -image <receipt.jpg> -customer <customer> [-y]

  Sends a JPEG photo of a receipt to Gemini and extracts the line items. The
  item prices are summed into a suggested amount and the names joined into a
  suggested description. Nothing is recorded until you confirm (or pass -y).

  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *scanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.image, "image", "", "Path to the JPEG receipt photo (required)")
	f.StringVar(&c.customer, "customer", "", "Customer to record the udhaar against (required)")
	f.BoolVar(&c.yes, "y", false, "Record the suggested entry without asking")
}

func (c *scanCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.image == "" || c.customer == "" {
		fmt.Fprintln(os.Stderr, "Error: -image and -customer flags are required.")
		return subcommands.ExitUsageError
	}

	jpeg, err := os.ReadFile(c.image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading image %q: %v\n", c.image, err)
		return subcommands.ExitFailure
	}

	book := LoadBook()
	cust, err := book.ResolveCustomer(c.customer)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	extractor, err := receipt.NewExtractor(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Scanning receipt...")
	items := extractor.Extract(ctx, jpeg)
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "Scanning failed: no items could be read from the receipt.")
		return subcommands.ExitFailure
	}

	amount, desc := receipt.Suggestion(items)
	fmt.Printf("Found %d items:\n", len(items))
	for _, it := range items {
		fmt.Printf("  - %s: %s\n", it.Name, khata.Rupees(it.Price))
	}
	fmt.Printf("Suggested udhaar for %s: %s (%s)\n", cust.Name, amount, desc)

	if !c.yes && !confirm(os.Stdin, os.Stdout) {
		fmt.Println("Not recorded.")
		return subcommands.ExitSuccess
	}

	tx, err := book.Record(cust.ID, khata.Credit, amount, desc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving book:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(book, tx))
	return subcommands.ExitSuccess
}

func confirm(r *os.File, w *os.File) bool {
	fmt.Fprint(w, "Record this entry? [y/N] ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
