package main

import (
	"os"
	"time"

	"github.com/fatih/color"
)

// consoleNotifier prints notifications on stderr. Messages never expire.
type consoleNotifier struct{}

func (consoleNotifier) Notify(message string, timeout time.Duration) {
	color.New(color.FgGreen).Fprintln(os.Stderr, message)
}
