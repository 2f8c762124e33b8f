package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/hangman/internal/config"
	"github.com/aretw0/hangman/internal/logging"
	"github.com/aretw0/hangman/pkg/domain"
	"github.com/aretw0/hangman/pkg/observability"
	"github.com/google/uuid"
	"golang.org/x/term"
)

// SignalContext is a context cancelled by SIGINT or SIGTERM that remembers
// which signal ended it, so the exit message can tell them apart.
type SignalContext struct {
	context.Context
	Cancel func()

	mu  sync.Mutex
	sig os.Signal
}

// NewSignalContext derives a SignalContext from parent.
// Signal delivery stops as soon as the context is done, whatever the cause.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, Cancel: cancel}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(signals)
		select {
		case sig := <-signals:
			sc.mu.Lock()
			sc.sig = sig
			sc.mu.Unlock()
			cancel()
		case <-ctx.Done():
		}
	}()

	return sc
}

// Signal reports the signal that cancelled the context; nil if none did.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sig
}

// createLogger configures the application logger.
// It writes to the error stream so stdout stays with the game.
// Debug forces the debug level; otherwise log_level from the config applies.
func createLogger(cfg config.Config, debug bool, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(logging.Options{
		Level:  level,
		JSON:   cfg.LogFormat == "json",
		Writer: w,
	}), nil
}

func newSessionID() string {
	return uuid.NewString()
}

// createHooks combines metrics (optional) with debug logging of every game event.
func createHooks(logger *slog.Logger, metrics *observability.Metrics, debug bool) domain.LifecycleHooks {
	var hooks domain.LifecycleHooks
	if metrics != nil {
		hooks = metrics.Hooks()
	}
	if debug {
		hooks = hooks.Merge(observability.LoggingHooks(logger))
	}
	return hooks
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func isInterrupted(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, io.EOF)
}

// handleExecutionError maps interruptions (signal, closed input) to a clean exit.
func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil
	}
	return err
}

// logCompletion reports how the session ended when it was not a normal exit.
func logCompletion(w io.Writer, err error, sig os.Signal, quiet bool) {
	if quiet || !isInterrupted(err) {
		return
	}
	switch sig {
	case os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted.")
	case nil:
		fmt.Fprintln(w)
		printSystemMessage(w, "Input closed.")
	default:
		fmt.Fprintln(w)
		printSystemMessage(w, "Terminated.")
	}
}
