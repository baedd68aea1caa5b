// Package main is the entry point for the cleanup CLI.
package main

import (
	"os"

	"github.com/jmylchreest/cleanup/cmd/cleanup/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
