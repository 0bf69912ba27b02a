// Package main provides the entry point for the agenda CLI.
package main

import (
	"os"

	"github.com/mfield/agenda/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
