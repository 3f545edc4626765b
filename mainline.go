// Package mainline unifies divergent operating-system application
// bootstrap and termination conventions into one deterministic process
// lifecycle: initialize, guarded run, shutdown. Platform-native
// interrupt and shutdown notifications are translated into a single
// termination event the application observes cooperatively.
//
// Example usage:
//
//	app, err := mainline.New(mainline.Descriptor{
//	    ShortName: "myservice",
//	    Version:   "1.4.0",
//	}, mainline.WithLogger(log.NewZerologAdapter()))
//	if err != nil {
//	    os.Exit(1)
//	}
//	os.Exit(app.Main(func() int {
//	    for evt := range app.Events() {
//	        if evt.Type() == event.TypeTerminationRequested {
//	            return mainline.ExitSuccess
//	        }
//	    }
//	    return mainline.ExitSuccess
//	}))
package mainline

import (
	"github.com/ferrolite/mainline/internal/app"
	"github.com/ferrolite/mainline/internal/crashguard"
	"github.com/ferrolite/mainline/internal/lifecycle"
	"github.com/ferrolite/mainline/internal/mainthread"
)

// App drives one process lifecycle. See the package example.
type App = app.App

// Descriptor supplies the application's short name, version and optional
// crash dump callback. The core reads it and never mutates it.
type Descriptor = app.Descriptor

// DumpFn is the crash dump callback invoked exactly once when a guarded
// run faults.
type DumpFn = crashguard.DumpFn

// EntryFunc is the application's run-phase entry function.
type EntryFunc = app.EntryFunc

// UILoopFunc is the platform's own UI/message loop, supplied to MainUI.
type UILoopFunc = app.UILoopFunc

// Option configures optional behavior of an App.
type Option = app.Option

// State is the lifecycle phase of the process.
type State = lifecycle.State

// Lifecycle states, in the only order they can be visited.
const (
	StateUnstarted   = lifecycle.StateUnstarted
	StateInitialized = lifecycle.StateInitialized
	StateRunning     = lifecycle.StateRunning
	StateTerminating = lifecycle.StateTerminating
	StateShutDown    = lifecycle.StateShutDown
)

// Process exit codes.
const (
	ExitSuccess     = app.ExitSuccess
	ExitInitFailure = app.ExitInitFailure
	ExitInterrupt   = app.ExitInterrupt
	ExitTerminate   = app.ExitTerminate
)

// Re-exported options.
var (
	WithLogger         = app.WithLogger
	WithQueue          = app.WithQueue
	WithQueueSize      = app.WithQueueSize
	WithBoot           = app.WithBoot
	WithDebug          = app.WithDebug
	WithConfigFile     = app.WithConfigFile
	WithConfigOverride = app.WithConfigOverride
	WithConfigWatcher  = app.WithConfigWatcher
	WithBundle         = app.WithBundle
	WithOpenURLHandler = app.WithOpenURLHandler
)

// New builds an App from the descriptor and options.
func New(desc Descriptor, opts ...Option) (*App, error) {
	return app.New(desc, opts...)
}

// MainThreadDesignated reports whether the process main thread has been
// designated, for diagnostic and assertion code outside the core.
func MainThreadDesignated() bool {
	return mainthread.Designated()
}
