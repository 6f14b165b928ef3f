package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportFailure(os.Stdout, os.Stderr, err))
	}
}

// reportFailure writes err to the appropriate stream and returns the process
// exit code. An interrupt is an expected termination path and gets the
// friendly stdout message rather than an error line.
func reportFailure(out, errOut io.Writer, err error) int {
	if errors.Is(err, errInterrupted) {
		fmt.Fprintln(out, "\nOperation cancelled by user.")
	} else {
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return 1
}
