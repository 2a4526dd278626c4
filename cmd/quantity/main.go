package main

import (
	"os"

	"github.com/govalues/quantity/cmd/quantity/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
