// Command cpsi is a command-line driver for the CPS interpreter: it reads
// a JSON program fixture, evaluates it, and prints the resulting answer.
package main

import (
	"os"

	"github.com/rljacobson/cps/cmd/cpsi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
