package main

import (
	"os"

	"github.com/scpi-lang/scpi/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
