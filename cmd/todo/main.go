package main

import (
	"fmt"
	"os"

	"todoapp/internal/console"
)

func main() {
	store := console.NewStore()

	// With no arguments, enter interactive mode: a single-command process
	// starts with empty storage, so only a session can exercise a workflow.
	if len(os.Args) == 1 {
		console.RunInteractive(store, os.Stdin, os.Stdout, os.Stderr)
		return
	}

	root := console.NewRootCommand(store)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
