// SPDX-License-Identifier: MIT

// Command histalg evaluates operations on prebinned histograms.
package main

import (
	"fmt"
	"os"

	"github.com/ssrothman/simon-mpl-util/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "histalg:", err)
		os.Exit(1)
	}
}
