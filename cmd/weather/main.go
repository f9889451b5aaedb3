package main

import (
	"os"

	"github.com/neexbeast/weatherdash/cmd/weather/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
