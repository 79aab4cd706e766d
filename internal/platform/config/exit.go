package config

import (
	"fmt"
	"os"
)

// Exitf reports a fatal command error on stderr and ends the process with
// status 1. cmd/i18nstatus uses it for bad flags and for failed or strict
// status runs, so CI sees a non-zero exit.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
