package cmd

import (
	"io"
	"os"
)

// Commands print to stdout and read confirmations from stdin; tests swap them
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)
