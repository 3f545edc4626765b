package app

import (
	"time"

	"github.com/ferrolite/mainline/internal/config"
	"github.com/ferrolite/mainline/pkg/log"
)

// UILoopFunc is the platform's own UI/message loop. It blocks on the
// calling thread until the OS ends the application, and its return value
// becomes the process exit code.
type UILoopFunc func(args []string) int

// uiShutdownWait bounds how long the will-terminate path waits for the
// run phase before proceeding with cleanup. Returning to the OS without
// cleanup forfeits the chance to run it at all, but waiting forever
// would hang the platform's termination sequence.
const uiShutdownWait = 30 * time.Second

// MainUI is the entry adapter for platforms whose native thread must run
// the platform's own UI event loop. When the application is configured
// as a headless utility it behaves exactly like Main. Otherwise the run
// phase executes on a secondary goroutine while the calling thread hosts
// the loop; the OS later calls back into the lifecycle hooks, and
// WillTerminate drives the full shutdown sequence before the loop
// returns control to the OS.
func (a *App) MainUI(entry EntryFunc, loop UILoopFunc) int {
	if a.cfg.Bool(config.ScopeApplication, config.KeyHeadless) || loop == nil {
		return a.Main(entry)
	}

	if err := a.initialize(); err != nil {
		return ExitInitFailure
	}

	a.bridge.Install()

	// The loop's return value is the process exit code; the entry's own
	// code is only recorded for diagnostics.
	a.runDone = make(chan struct{})
	go func() {
		defer close(a.runDone)
		a.logger.Debug("run phase finished", log.Int("code", a.runEntry(entry)))
	}()

	code := loop(a.argv)

	// If the platform shell never forwarded WillTerminate, run the same
	// teardown now; finishUI is single-shot either way.
	a.finishUI()
	return code
}

// DidFinishLaunching is forwarded by the platform shell once the native
// application object is live.
func (a *App) DidFinishLaunching() {
	a.logger.Debug("application did finish launching")
}

// DidBecomeActive is forwarded when the application enters the
// foreground.
func (a *App) DidBecomeActive() {
	a.logger.Debug("application did become active")
}

// WillResignActive is forwarded when the application is about to move to
// the background.
func (a *App) WillResignActive() {
	a.logger.Debug("application will resign active")
}

// WillTerminate is forwarded when the OS is taking the application down.
// It posts the termination request and synchronously drives the
// wind-down, cleanup and shutdown sequence; after the native loop
// returns there is no further opportunity to run any of it.
func (a *App) WillTerminate() {
	a.bridge.NotifyWillTerminate()
	a.finishUI()
}

// OpenURL is forwarded when the OS asks the application to open a URL.
// It reports whether a registered handler accepted it.
func (a *App) OpenURL(url, source string) bool {
	if a.openURL == nil {
		return false
	}
	return a.openURL(url, source)
}

// finishUI waits for the run phase, then releases the bundle handle and
// the translated argument vector, in that order, before shutting the
// lifecycle down. Single-shot; later calls return immediately.
func (a *App) finishUI() {
	a.uiTeardown.Do(func() {
		if a.runDone != nil {
			select {
			case <-a.runDone:
			case <-time.After(uiShutdownWait):
				a.logger.Warn("run phase did not finish in time",
					log.Duration("waited", uiShutdownWait),
				)
			}
		}

		if a.bundle != nil {
			if err := a.bundle.Close(); err != nil {
				a.logger.Warn("bundle release failed", log.Err(err))
			}
			a.bundle = nil
		}
		a.argv = nil

		a.teardown()
		a.ctrl.Shutdown()
	})
}
