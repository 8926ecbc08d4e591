package main

import (
	"os"

	"github.com/tutelearn/tute/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
