package main

import (
	"os"

	"github.com/harnstore/harn-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
