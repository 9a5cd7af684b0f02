package main

import (
	"os"

	"github.com/neutrino09/intervu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
