//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// shutdownSignals stop a render or stats run. Windows only delivers
// os.Interrupt (Ctrl+C, Ctrl+Break).
var shutdownSignals = []os.Signal{os.Interrupt}

// notifyContext derives a context canceled by the first shutdown signal.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
