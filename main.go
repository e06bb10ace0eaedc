package main

import (
	"os"

	"github.com/gestaltdiff/gestaltdiff/internal/cli"
)

func main() {
	// Run has already written any error to stderr.
	code, _ := cli.Run(os.Args, nil)
	os.Exit(code)
}
