// Package main provides the CLI entrypoint for macro-synth.
//
// macro-synth is a compile-time code synthesis tool that:
//   - Reads macro usages from request files or //synth: directives in Go packages
//   - Expands them with a fixed set of synthesis rules
//   - Prints or writes the generated declarations and expressions
package main

import (
	"os"

	"macro-synth/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
