package main

import (
	"os"

	"github.com/letteragent/letteragent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
