package main

import (
	"os"

	"github.com/seonho-dev/tutorgraph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
