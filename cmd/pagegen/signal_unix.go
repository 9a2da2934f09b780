//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals stop a build between pages: Ctrl-C, plus the SIGTERM a
// CI runner or watch script sends on timeout.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// notifyContext derives the build context. Pages already written stay on
// disk when it is canceled.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
