package main

import (
	"os"

	"github.com/vuetsc/compiler/cmd/vuetsc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
