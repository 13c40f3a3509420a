package main

import (
	"os"

	"github.com/simaogato/worth-backend/cmd/worth/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
