//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext returns a context cancelled on Ctrl+C, which ends watch
// mode and aborts a running PDF export. Windows has no SIGTERM.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
