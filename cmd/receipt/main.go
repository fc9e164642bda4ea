// receipt builds a PDF purchase receipt from a CSV of line items.
//
// Usage:
//
//	receipt              render with the configured strategy (html by default)
//	receipt html         fill template.html and print it with headless Chrome
//	receipt direct       assemble the document directly, no template
//	receipt init         write sample products.csv and template.html
//
// Input is read from products.csv in the working directory and the result
// is written to output/check_<timestamp>.pdf.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
