// Package main provides the entry point for the merchantctl CLI.
package main

import (
	"os"

	"serviceability/cmd/merchantctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
