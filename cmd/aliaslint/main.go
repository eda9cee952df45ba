// Package main provides the aliaslint command.
package main

import (
	"os"

	"github.com/leapstack-labs/aliaslint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
