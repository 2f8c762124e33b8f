package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/hangman"
	"github.com/aretw0/hangman/internal/adapters/http"
	"github.com/aretw0/hangman/internal/config"
	"github.com/aretw0/hangman/internal/presentation/tui"
	"github.com/aretw0/hangman/pkg/console"
	"github.com/aretw0/hangman/pkg/game"
	"github.com/aretw0/hangman/pkg/observability"
	"github.com/aretw0/hangman/pkg/persistence/middleware"
	"github.com/aretw0/hangman/pkg/ports"
	"github.com/aretw0/hangman/pkg/words"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RunOptions contains everything a command needs besides the configuration.
type RunOptions struct {
	Config config.Config
	Debug  bool
	// JSON switches the display to NDJSON events on the output stream.
	JSON bool

	// Streams default to the process stdio.
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

func (o *RunOptions) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.ErrOut == nil {
		o.ErrOut = os.Stderr
	}
}

// display is what the session and the admin flow need from the console.
type display interface {
	ports.Display
	ports.AdminPrompter
}

// runtime holds the collaborators shared by the commands.
type runtime struct {
	logger    *slog.Logger
	sessionID string
	source    *words.Source
	closer    io.Closer
}

// setup validates the configuration and builds the logger and the word source.
// A non-nil reg also records store latencies.
func setup(opts RunOptions, reg prometheus.Registerer) (*runtime, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := createLogger(opts.Config, opts.Debug, opts.ErrOut)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	sessionID := newSessionID()
	scoped := logger.With("session_id", sessionID)

	backend, closer, err := newStore(opts.Config, scoped)
	if err != nil {
		return nil, err
	}

	mws := []middleware.Middleware{middleware.NewLoggingMiddleware(scoped)}
	if reg != nil {
		mw, err := middleware.NewMetricsMiddleware(reg)
		if err != nil {
			closer.Close()
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		mws = append(mws, mw)
	}
	store := middleware.Chain(backend, mws...)

	source := words.NewSource(store,
		words.WithSeed(opts.Config.Seed),
		words.WithLogger(scoped),
	)
	return &runtime{logger: logger, sessionID: sessionID, source: source, closer: closer}, nil
}

func newDisplay(opts RunOptions, logger *slog.Logger) display {
	if opts.JSON {
		return console.NewJSONDisplay(opts.In, opts.Out)
	}

	var textOpts []console.TextOption
	if isTerminal(opts.Out) {
		tui.PrintBanner(opts.Out, hangman.Version)
		renderer, err := tui.NewRenderer(60)
		if err != nil {
			logger.Warn("Markdown renderer unavailable", "error", err)
		} else {
			textOpts = append(textOpts, console.WithRenderer(renderer))
		}
	}
	return console.NewTextDisplay(opts.In, opts.Out, textOpts...)
}

// RunPlay runs a game session until the player exits or the context ends.
// With enable_admin set the mode menu is shown first.
func RunPlay(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	reg := prometheus.NewRegistry()
	rt, err := setup(opts, reg)
	if err != nil {
		return err
	}
	defer rt.closer.Close()

	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if addr := opts.Config.MetricsAddr; addr != "" {
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		go func() {
			if err := http.Serve(ctx, addr, reg, rt.logger); err != nil {
				rt.logger.Error("Metrics server failed", "error", err)
			}
		}()
	}

	d := newDisplay(opts, rt.logger)
	session := game.NewSession(rt.source, d,
		game.WithSettings(opts.Config.Settings()),
		game.WithLogger(rt.logger),
		game.WithSessionID(rt.sessionID),
		game.WithLifecycleHooks(createHooks(rt.logger, metrics, opts.Debug)),
	)

	rt.logger.Info("Session started", "session_id", rt.sessionID, "store", opts.Config.Store)
	err = session.Run(ctx)
	rt.logger.Info("Session finished", "rounds", session.Rounds())
	return err
}

// RunAdmin runs only the word management flow.
func RunAdmin(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	rt, err := setup(opts, nil)
	if err != nil {
		return err
	}
	defer rt.closer.Close()

	session := game.NewSession(rt.source, newDisplay(opts, rt.logger),
		game.WithSettings(opts.Config.Settings()),
		game.WithLogger(rt.logger),
		game.WithSessionID(rt.sessionID),
		game.WithLifecycleHooks(createHooks(rt.logger, nil, opts.Debug)),
	)
	return session.Admin(ctx)
}

// ListWords prints every valid entry of the configured store as "word,clue".
func ListWords(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	rt, err := setup(opts, nil)
	if err != nil {
		return err
	}
	defer rt.closer.Close()

	entries, err := rt.source.Load(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(opts.Out, "%s,%s\n", e.Word, e.Clue)
	}
	return nil
}

// Execute runs fn under a signal-aware context and maps interruptions to a clean exit.
func Execute(opts RunOptions, fn func(context.Context, RunOptions) error) error {
	opts.defaults()
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	err := fn(sigCtx, opts)
	logCompletion(opts.ErrOut, err, sigCtx.Signal(), opts.JSON)
	return handleExecutionError(err)
}
