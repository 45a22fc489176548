// Package main is the entry point for the pyimplib CLI.
package main

import (
	"os"

	"github.com/pyimplib/pyimplib/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
