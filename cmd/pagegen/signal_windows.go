//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// shutdownSignals stop a build between pages. Windows delivers only
// os.Interrupt (Ctrl-C or Ctrl-Break) to console programs.
var shutdownSignals = []os.Signal{os.Interrupt}

// notifyContext derives the build context. Pages already written stay on
// disk when it is canceled.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
