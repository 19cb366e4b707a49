// Command proverctl runs a resolution-refutation proof attempt over
// a JSON problem file and prints the derivation trace, if any, to
// standard output.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
