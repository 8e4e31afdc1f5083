// Package main is the entry point for the icsc CLI.
package main

import (
	"os"

	"icsc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
