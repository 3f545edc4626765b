package app

import (
	"io"

	"github.com/ferrolite/mainline/pkg/event"
	"github.com/ferrolite/mainline/pkg/log"
)

// Option configures optional behavior of an App.
type Option func(*options)

// options holds the optional configuration for an App instance.
type options struct {
	logger      log.Logger
	queue       *event.Queue
	queueSize   int
	boot        func() error
	debug       *bool
	configPath  string
	watchConfig bool
	bundle      io.Closer
	openURL     func(url, source string) bool
	overrides   []configOverride
}

// configOverride is an explicitly-set value that wins over both the
// config file and the environment, the way changed CLI flags do.
type configOverride struct {
	scope string
	key   string
	value bool
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger:    log.NewNoopLogger(),
		queueSize: event.DefaultQueueSize,
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithQueue supplies the event queue termination requests are posted to.
// If not provided, the App owns a queue of the default size.
func WithQueue(queue *event.Queue) Option {
	return func(o *options) {
		o.queue = queue
	}
}

// WithQueueSize sizes the App-owned event queue. Ignored when WithQueue
// is used.
func WithQueueSize(size int) Option {
	return func(o *options) {
		o.queueSize = size
	}
}

// WithBoot sets the subsystem boot hook run inside Initialize. A failing
// hook aborts startup before the run phase.
func WithBoot(boot func() error) Option {
	return func(o *options) {
		o.boot = boot
	}
}

// WithDebug overrides the application.debug configuration flag. Debug
// mode invokes the entry function directly, bypassing the crash guard.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = &debug
	}
}

// WithConfigFile sets an explicit configuration file path. If not
// provided, the default path is used when the file exists.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithConfigWatcher enables live reload of the configuration file.
func WithConfigWatcher() Option {
	return func(o *options) {
		o.watchConfig = true
	}
}

// WithBundle attaches a platform bundle/resource handle that the UI
// teardown path releases before shutdown.
func WithBundle(bundle io.Closer) Option {
	return func(o *options) {
		o.bundle = bundle
	}
}

// WithConfigOverride forces a configuration value, taking precedence
// over the config file and the environment. Used for explicitly-set CLI
// flags.
func WithConfigOverride(scope, key string, value bool) Option {
	return func(o *options) {
		o.overrides = append(o.overrides, configOverride{scope: scope, key: key, value: value})
	}
}

// WithOpenURLHandler registers the handler behind the OpenURL lifecycle
// hook. Without a handler, OpenURL reports the URL as unhandled.
func WithOpenURLHandler(handler func(url, source string) bool) Option {
	return func(o *options) {
		o.openURL = handler
	}
}
