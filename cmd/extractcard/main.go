// extractcard runs the extraction core against a local PDF and prints what
// it found. Handy for checking a vendor layout without a mailbox run.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/giftcards-tracker/internal/extract"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <gift-card.pdf>", os.Args[0])
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %v", path, err)
	}

	extractor := extract.New(extract.Options{}, slog.Default())
	details, ok := extractor.Details(data)
	if !ok {
		fmt.Println("no gift card code found")
		os.Exit(1)
	}
	fmt.Printf("code:  %s\nvalue: %d\n", details.Code, details.Value)
}
