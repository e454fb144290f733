package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// Interrupted commands surface context.Canceled; exit quietly.
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "launchpad:", err)
		}
		os.Exit(1)
	}
}
