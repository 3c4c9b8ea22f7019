package main

import (
	"os"

	"github.com/idelchi/dirusage/internal/cli"
)

// Set at build time via ldflags.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		cli.Report(os.Stderr, err)

		os.Exit(1)
	}
}
