package main

import (
	"os"

	"github.com/LaplaceYoung/pixelcraft/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
