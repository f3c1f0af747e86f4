package main

import (
	"os"

	"github.com/autodiag/autodiag/adctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
