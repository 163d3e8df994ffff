package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tinylang/gotiny/internal/scanner"

	"github.com/michael-go/go-jsn/jsn"
)

func printTokens(source []byte) error {
	scan := scanner.New(bytes.NewReader(source), scanner.Options{})
	tokens := scan.ScanTokens()

	json, err := jsn.NewJson(tokens)
	if err != nil {
		return fmt.Errorf("failed to convert tokens to json: %w", err)
	}
	fmt.Println(json.Pretty())

	return nil
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: print-tokens [tiny source file]")
		os.Exit(1)
	}

	sourceFile := os.Args[1]
	source, err := os.ReadFile(sourceFile)
	if err != nil {
		fmt.Println("Could not read file:", err)
		os.Exit(1)
	}

	err = printTokens(source)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
