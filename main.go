package main

import (
	"os"

	"github.com/SiddiqueAhmad/ai-costing/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
