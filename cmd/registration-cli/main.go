package main

import (
	"os"

	"registration/cmd/registration-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
