package main

import (
	"fmt"
	"io"

	"exprlex/internal/observ"
)

// printTimings writes the --timings summary; a nil timer prints nothing.
func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	if _, err := fmt.Fprint(out, timer.Summary()); err != nil {
		panic(err)
	}
}
