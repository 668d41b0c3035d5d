package main

import (
	"os"

	"xhdwallet/cmd/xhdwallet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
