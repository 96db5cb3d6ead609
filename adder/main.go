// adder adds two integers through the callable contract and prints the sum.
// With no arguments it prints the sum of 1111 and 2222.
package main

import (
	"fmt"
	"os"

	"github.com/toejough/callshape/adder/run"
)

// main is the entry point of the adder tool.
func main() {
	err := run.Run(os.Args, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
