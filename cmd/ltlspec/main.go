package main

import (
	"os"

	"github.com/tlforge/ltlspec/cmd/ltlspec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
