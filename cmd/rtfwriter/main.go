package main

import (
	"os"

	"github.com/roboco-io/rtfwriter/internal/cli"
)

// Set by -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
