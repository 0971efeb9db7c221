package main

import (
	"os"

	"github.com/bjaus/textable/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
