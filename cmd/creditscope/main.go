// Package main provides the entry point for the creditscope consumption dashboard CLI.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
