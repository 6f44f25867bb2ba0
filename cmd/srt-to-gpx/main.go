package main

import (
	"os"

	"github.com/endolith/srt-to-gpx/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
