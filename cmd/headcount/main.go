package main

import (
	"fmt"
	"os"

	"github.com/ppiankov/headcount/internal/cli"
)

// Version information set via ldflags during build
// Example: go build -ldflags="-X main.version=0.1.0"
var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
