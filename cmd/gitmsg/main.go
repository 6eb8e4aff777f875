package main

import (
	"os"

	"github.com/dlnilsson/gitmsg/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
