package main

import (
	"os"

	"github.com/vegasq/statcat/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
