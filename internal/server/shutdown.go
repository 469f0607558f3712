package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// signalContext is cancelled on an interrupt or terminate signal.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
