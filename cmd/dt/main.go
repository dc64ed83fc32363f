// The dt command evaluates date and duration expressions.
//
// Usage:
//
//	dt [flags] [expr ...]
//
// Each argument is evaluated and printed as ">>> expr => result". With
// no arguments, dt runs an interactive loop on a terminal and otherwise
// evaluates standard input one line at a time.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"go.dtime.dev/internal/logger"
)

func main() {
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
	logger.Cleanup()
	if err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

func report(w io.Writer, err error) {
	fmt.Fprintf(w, "dt: %v\n", err)
	if hints := errors.FlattenHints(err); hints != "" {
		fmt.Fprintf(w, "hint: %s\n", hints)
	}
}
