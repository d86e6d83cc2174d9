// Package main provides the CLI entrypoint for notify-generator.
//
// notify-generator reads a compilation model snapshot (YAML) listing classes
// and their annotated fields, and emits per class:
//   - Properties whose setters raise a change notification
//   - Change notification events
//   - Trigger methods raising those events
//   - Optional payload types carrying the new value
package main

import (
	"fmt"
	"os"

	"notify-generator/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
