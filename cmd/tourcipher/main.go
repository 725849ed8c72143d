package main

import (
	"os"

	"tourcipher/cmd/tourcipher/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
