package main

import (
	"os"

	"github.com/gmatize/gmatize/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
