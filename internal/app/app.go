// Package app implements the application layer for alertcord.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/alertcord/alertcord/internal/adapters/ingest"
	"github.com/alertcord/alertcord/internal/adapters/telemetry"
	"github.com/alertcord/alertcord/internal/adapters/watcher"
	"github.com/alertcord/alertcord/internal/core/domain"
	"github.com/alertcord/alertcord/internal/core/ports"
	"github.com/alertcord/alertcord/internal/engine/relay"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	notifier     ports.Notifier
	logger       ports.Logger
	tracer       ports.Tracer
	watcher      ports.Watcher
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	notifier ports.Notifier,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		notifier:     notifier,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithTracer sets the tracer used for relay operations.
func (a *App) WithTracer(tracer ports.Tracer) *App {
	a.tracer = tracer
	return a
}

// WithWatcher sets the file watcher used for configuration hot reload.
func (a *App) WithWatcher(w ports.Watcher) *App {
	a.watcher = w
	return a
}

// WithStdout redirects delegated tool output.
// This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// Dispatch delegates one build target to the configured external tool and
// waits for it to finish.
func (a *App) Dispatch(ctx context.Context, target domain.Target) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	argv, err := cfg.Toolchain.Argv(target)
	if err != nil {
		return err
	}

	a.logger.Info("delegating to " + strings.Join(argv, " "))

	if err := a.executor.Execute(ctx, argv, ".", a.stdout); err != nil {
		return errors.Join(domain.ErrDispatchFailed, err)
	}
	return nil
}

// Clean removes the build tool's output directory. A missing directory is
// not an error.
func (a *App) Clean(_ context.Context) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	dir := cfg.Toolchain.TargetDir
	if dir == "" {
		dir = domain.DefaultToolchain().TargetDir
	}

	a.logger.Info(fmt.Sprintf("removing %s...", dir))
	if err := os.RemoveAll(dir); err != nil {
		return errors.Join(domain.ErrCleanFailed, zerr.With(err, "dir", dir))
	}
	a.logger.Info(fmt.Sprintf("removed %s", dir))
	return nil
}

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	// Listen overrides the configured ingest address when non-empty.
	Listen string

	// LogJSON switches the logger to JSON output for the lifetime of the
	// server. Pretty output stays on otherwise.
	LogJSON bool
}

// Serve runs the webhook relay until ctx is canceled.
//
// It receives Alertmanager groups over HTTP, builds Discord messages from
// them, and posts each one to the configured webhook. When a config file is
// in use and a watcher is available, webhook URL and suppression window
// changes are picked up without a restart.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	if opts.LogJSON {
		a.logger.SetJSON(true)
	}

	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if err := cfg.ValidateWebhookURL(); err != nil {
		return err
	}

	listen := cfg.Listen
	if opts.Listen != "" {
		listen = opts.Listen
	}

	tracer := a.tracer
	if tracer == nil {
		tracer = telemetry.NewNoOpTracer()
	}
	defer func() { _ = tracer.Shutdown(context.WithoutCancel(ctx)) }()

	state := &serveState{
		webhookURL: cfg.WebhookURL,
		suppressor: relay.NewSuppressor(cfg.SuppressionWindow),
	}

	server := ingest.NewServer(listen, a.logger, a.forwarder(tracer, state))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(ctx)
	})

	if path := a.configLoader.DiscoverPath("."); path != "" && a.watcher != nil {
		g.Go(func() error {
			return a.watchConfig(ctx, path, listen, state)
		})
	}

	return g.Wait()
}

// serveState is the mutable relay configuration shared between the forward
// path and the config reloader.
type serveState struct {
	mu         sync.RWMutex
	webhookURL string
	suppressor *relay.Suppressor
}

func (s *serveState) currentWebhookURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.webhookURL
}

// forwarder returns the ForwardFunc handed to the ingest server.
func (a *App) forwarder(tracer ports.Tracer, state *serveState) ingest.ForwardFunc {
	return func(ctx context.Context, group *domain.Group) (err error) {
		ctx, span := tracer.Start(ctx, "relay.forward",
			ports.WithAttribute("group", group.Name()),
		)
		defer func() { span.End(err) }()

		var errs error
		for _, delivery := range relay.Build(group) {
			if !state.suppressor.ShouldDeliver(delivery) {
				a.logger.Info(fmt.Sprintf("suppressed duplicate %s delivery for %s",
					delivery.Status, group.Name()))
				continue
			}

			if sendErr := a.notifier.Send(ctx, state.currentWebhookURL(), &delivery.Message); sendErr != nil {
				errs = errors.Join(errs, sendErr)
				continue
			}

			// Only a delivered group suppresses repeats: the ingest handler
			// answers 400 on failure so Alertmanager retries, and that retry
			// must reach Discord.
			state.suppressor.MarkDelivered(delivery)
			span.AddEvent("delivered " + string(delivery.Status))
			a.logger.Info(fmt.Sprintf("delivered %s message for %s (%d alerts)",
				delivery.Status, group.Name(), len(delivery.Alerts)))
		}
		return errs
	}
}

// watchConfig reloads the relay configuration when the config file changes.
func (a *App) watchConfig(ctx context.Context, path, listen string, state *serveState) error {
	if err := a.watcher.Start(ctx, filepath.Dir(path)); err != nil {
		return zerr.Wrap(err, "failed to watch config directory")
	}
	defer func() { _ = a.watcher.Stop() }()

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {
		a.reloadConfig(listen, state)
	})
	defer debouncer.Flush()

	for event := range a.watcher.Events() {
		if filepath.Base(event.Path) == domain.ConfigFileName {
			debouncer.Add(event.Path)
		}
	}
	return nil
}

func (a *App) reloadConfig(listen string, state *serveState) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		a.logger.Error(zerr.Wrap(err, "config reload failed, keeping previous configuration"))
		return
	}
	if err := cfg.ValidateWebhookURL(); err != nil {
		a.logger.Error(zerr.Wrap(err, "config reload failed, keeping previous configuration"))
		return
	}

	state.mu.Lock()
	state.webhookURL = cfg.WebhookURL
	state.mu.Unlock()
	state.suppressor.SetWindow(cfg.SuppressionWindow)

	if cfg.Listen != listen {
		a.logger.Warn("listen address changed, restart to apply")
	}
	a.logger.Info("configuration reloaded")
}
