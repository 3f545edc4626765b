// Package termination translates platform-native interrupt and shutdown
// notifications into a single abstract termination request, posted to
// the application's event queue. The bridge never mutates lifecycle
// state; reacting to the posted event is the application's job.
package termination

import (
	"sync"
	"time"

	"github.com/ferrolite/mainline/internal/config"
	"github.com/ferrolite/mainline/pkg/event"
	"github.com/ferrolite/mainline/pkg/log"
)

// deferralPause is how long a native handler lingers after negotiating a
// shutdown deferral, giving the application a window to react to the
// posted request before the OS proceeds.
const deferralPause = time.Second

// Bridge registers the platform-native termination handler and maps its
// invocations onto termination Requests.
type Bridge struct {
	queue  event.Poster
	cfg    config.Source
	logger log.Logger

	mu        sync.Mutex
	installed bool
	teardown  func()
}

// New creates a bridge posting into queue. cfg decides the daemon-mode
// logoff policy; a nil cfg means non-daemon.
func New(queue event.Poster, cfg config.Source, logger log.Logger) *Bridge {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Bridge{queue: queue, cfg: cfg, logger: logger}
}

// Install registers exactly one OS-native handler for the platform.
// A second call while installed is a no-op.
func (b *Bridge) Install() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.installed {
		return
	}
	b.teardown = b.install()
	b.installed = true
}

// Uninstall deregisters the native handler. Idempotent.
func (b *Bridge) Uninstall() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.installed {
		return
	}
	if b.teardown != nil {
		b.teardown()
		b.teardown = nil
	}
	b.installed = false
}

// NotifyWillTerminate posts the request corresponding to the UI
// lifecycle "will terminate" callback: the OS is taking the application
// down and the run phase must wind up now.
func (b *Bridge) NotifyWillTerminate() {
	b.post(Request{Cause: CauseSystemShutdown, MustDefer: true}, "will-terminate")
}

// RequestClose posts an application-initiated close request. This is the
// only producer of the ApplicationClose cause; no native notification
// maps to it.
func (b *Bridge) RequestClose() {
	b.post(Request{Cause: CauseApplicationClose}, "")
}

// post builds the termination CloudEvent and hands it to the queue
// without blocking. Safe from whatever goroutine or handler thread the
// native notification arrives on.
func (b *Bridge) post(req Request, native string) {
	evt := event.New(event.TypeTerminationRequested, event.DefaultSource, Payload{
		Cause:     req.Cause.String(),
		MustDefer: req.MustDefer,
		Native:    native,
	})
	if !b.queue.Post(evt) {
		b.logger.Warn("termination event dropped, queue full",
			log.String("cause", req.Cause.String()),
		)
	}
}

// daemonMode reports the application.daemon configuration flag.
func (b *Bridge) daemonMode() bool {
	if b.cfg == nil {
		return false
	}
	return b.cfg.Bool(config.ScopeApplication, config.KeyDaemon)
}
