package main

import (
	"os"

	"intcalc/cmd/intcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
