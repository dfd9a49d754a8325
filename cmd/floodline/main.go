package main

import (
	"fmt"
	"os"

	"github.com/psenarath/floodline/internal/cli"
)

func main() {
	// The root command silences cobra's own error printing, so the
	// returned error must be reported here or it is lost.
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
