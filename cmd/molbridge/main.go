// Command molbridge drives a running PyMOL session over its RPC interface.
package main

import (
	"os"

	"github.com/kilupskalvis/molbridge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
