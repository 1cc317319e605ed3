package main

import (
	"fmt"
	"os"
)

var exit = os.Exit

func main() {
	Execute()
}

// Execute runs the root command. A panic inside a benchmark (integer
// division by zero) is reported and turned into exit status 1.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "benchmark aborted: %v\n", r)
			exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}
