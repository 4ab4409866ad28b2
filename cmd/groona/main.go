package main

import (
	"os"

	"github.com/quantamisecode-hub/groona/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
