// SPDX-License-Identifier: MIT

// algoshelf runs the shelf's algorithms from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/algoshelf/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
