package main

import (
	"os"

	"github.com/tinylang/gotiny/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
