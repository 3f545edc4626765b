// Package app composes the lifecycle controller, termination bridge,
// crash guard and configuration into the platform entry adapters that
// host applications call from their native entry points.
package app

import (
	"fmt"
	"io"
	"os"
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/ferrolite/mainline/internal/config"
	"github.com/ferrolite/mainline/internal/crashguard"
	"github.com/ferrolite/mainline/internal/lifecycle"
	"github.com/ferrolite/mainline/internal/termination"
	"github.com/ferrolite/mainline/pkg/event"
	"github.com/ferrolite/mainline/pkg/log"
)

// EntryFunc is the application's run-phase entry function. Its return
// value becomes the process exit code on the console path.
type EntryFunc func() int

// Process exit codes. Signal-derived codes follow the Unix convention of
// 128 plus the signal number.
const (
	ExitSuccess     = 0
	ExitInitFailure = 1
	ExitInterrupt   = 130
	ExitTerminate   = 143
)

// Descriptor supplies the application identity consumed by the crash
// guard. The core reads it and never mutates it.
type Descriptor struct {
	ShortName    string
	Version      string
	DumpCallback crashguard.DumpFn
}

// App ties one process lifecycle together. Create it with New, then hand
// control over with Main (console/daemon platforms) or MainUI (platforms
// that own the main thread with their own event loop).
type App struct {
	desc    Descriptor
	cfg     *config.Store
	logger  log.Logger
	queue   *event.Queue
	ctrl    *lifecycle.Controller
	bridge  *termination.Bridge
	watcher *config.Watcher

	boot    func() error
	debug   bool
	bundle  io.Closer
	openURL func(url, source string) bool

	// argv is the argument-vector storage built for entry translation;
	// the UI teardown releases it explicitly.
	argv []string

	runDone chan struct{}

	uiTeardown sync.Once
}

// New builds an App from the descriptor and options. The configuration
// file (explicit path, or the default location when present) and
// MAINLINE_* environment variables are loaded here, once, before any
// lifecycle phase begins.
func New(desc Descriptor, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg := config.NewStore()
	path := o.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if path != "" && config.FileExists(path) {
		fc, err := config.LoadFileConfig(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		config.ApplyFileConfig(cfg, fc)
	}
	config.ApplyEnvConfig(cfg)
	for _, ov := range o.overrides {
		cfg.Set(ov.scope, ov.key, ov.value)
	}

	queue := o.queue
	if queue == nil {
		queue = event.NewQueue(o.queueSize)
	}

	// The guard strategy is fixed at startup: debug trades crash
	// diagnostics for full in-process debuggability.
	debug := cfg.Bool(config.ScopeApplication, config.KeyDebug)
	if o.debug != nil {
		debug = *o.debug
	}

	a := &App{
		desc:    desc,
		cfg:     cfg,
		logger:  o.logger,
		queue:   queue,
		ctrl:    lifecycle.New(o.logger),
		bridge:  termination.New(queue, cfg, o.logger),
		boot:    o.boot,
		debug:   debug,
		bundle:  o.bundle,
		openURL: o.openURL,
		argv:    append([]string(nil), os.Args...),
	}
	if o.watchConfig && path != "" {
		a.watcher = config.NewWatcher(path, cfg, o.logger)
	}
	return a, nil
}

// Events returns the termination event stream the run phase observes.
func (a *App) Events() <-chan cloudevents.Event {
	return a.queue.Events()
}

// State returns the current lifecycle state.
func (a *App) State() lifecycle.State {
	return a.ctrl.State()
}

// Config exposes the configuration collaborator.
func (a *App) Config() config.Source {
	return a.cfg
}

// RequestClose posts an application-initiated close request, the
// cooperative way for the application to ask itself to stop.
func (a *App) RequestClose() {
	a.bridge.RequestClose()
}

// Shutdown drives the lifecycle to ShutDown. Idempotent and safe to call
// defensively from any state.
func (a *App) Shutdown() {
	a.ctrl.Shutdown()
}

// initialize runs the boot hook through the controller and starts the
// optional config watcher. On failure only the idempotent void shutdown
// is performed; nothing that requires successful initialization runs.
func (a *App) initialize() error {
	if err := a.ctrl.Initialize(a.boot); err != nil {
		a.logger.Error("not starting", log.Err(err))
		a.ctrl.Shutdown()
		return err
	}
	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			a.logger.Warn("config watcher unavailable", log.Err(err))
			a.watcher = nil
		}
	}
	return nil
}

// runEntry executes the run phase through the guard strategy resolved at
// startup.
func (a *App) runEntry(entry EntryFunc) int {
	code, err := a.ctrl.Run(a.guarded(entry))
	if err != nil {
		a.logger.Error("run rejected", log.Err(err))
		return ExitInitFailure
	}
	return code
}

// guarded wraps entry per the startup guard strategy: debug builds and
// descriptors without a dump callback run the entry directly.
func (a *App) guarded(entry EntryFunc) func() int {
	if a.debug || a.desc.DumpCallback == nil {
		return entry
	}
	return func() int {
		cctx := crashguard.NewContext(a.desc.ShortName, a.desc.Version, a.desc.DumpCallback)
		defer cctx.Release()
		return crashguard.Guard(entry, a.desc.DumpCallback, cctx.Label())
	}
}

// teardown stops the ambient machinery installed for the run phase.
func (a *App) teardown() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	a.bridge.Uninstall()
}
