package main

import (
	"os"

	"github.com/cloud-ru/compound-calc-go/cmd/calc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
