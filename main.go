package main

import (
	"os"

	"github.com/mlindgren/logsift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
