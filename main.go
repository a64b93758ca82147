// Package main is the entry point for the projgen CLI.
package main

import (
	"os"

	"github.com/wellmaintained/projgen/cmd"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		// cobra has already printed it; only usage errors get this far
		os.Exit(2)
	}
}
