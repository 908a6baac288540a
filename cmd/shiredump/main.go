// Command shiredump parses a single .shire file and prints its header
// and extracted body variable references. It exercises the parser
// end-to-end; it is not a FileRunner implementation.
package main

import (
	"fmt"
	"os"

	"github.com/shire-lang/shire-core/internal/parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: shiredump <file.shire>\n")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "shiredump: %s\n", err)
		os.Exit(1)
	}

	file, err := parser.ParseFile(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "shiredump: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("name: %q\n", file.Header.Name)
	if file.Header.Description != nil {
		fmt.Printf("description: %q\n", *file.Header.Description)
	}
	if file.Header.Interaction != nil {
		fmt.Printf("interaction: %s\n", *file.Header.Interaction)
	}
	if file.Header.ActionLocation != nil {
		fmt.Printf("actionLocation: %s\n", *file.Header.ActionLocation)
	}
	for key, transform := range file.Header.Variables {
		fmt.Printf("variable %q: %s\n", key, transform.Display())
	}

	refs := parser.ExtractVariableReferences(file.Body)
	fmt.Printf("body references: %v\n", refs)
	fmt.Printf("body lines: %d\n", len(file.Body))
}
