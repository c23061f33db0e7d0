package util

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/report"
)

// exit is mocked out for unit testing.
var exit = os.Exit

// HandleFatalError handles errors that are severe enough to terminate the
// program.
func HandleFatalError(err error) {
	log.WithError(err).Debug("Fatal error")
	report.Log.WithError(err).Error("Fatal error")
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", errors.GetPrintableMessage(err))
	exit(1)
}

// HandlePanic reports panics before letting them crash the program. It must
// be deferred.
func HandlePanic() {
	if r := recover(); r != nil {
		report.Log.WithFields(log.Fields{
			"panic": fmt.Sprint(r),
			"stack": string(debug.Stack()),
		}).Error("Panic")
		panic(r)
	}
}

// SignalContext returns a context that's cancelled when the process receives
// SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-c:
			log.WithField("signal", sig).Info("Interrupted. Stopping without saving progress.")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(c)
	}()
	return ctx, cancel
}
