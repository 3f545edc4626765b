// Package crashguard wraps the application run phase so that a
// diagnostic dump callback fires exactly once when the run faults,
// without altering the exit code of a run that completes normally.
package crashguard

import (
	"sync"
)

// DumpFn is the crash dump callback supplied by the application
// descriptor. It receives the crash label and the fault value recovered
// from the run phase. Writing the actual dump artifact is the callback's
// business.
type DumpFn func(label string, reason interface{})

// fallbackName labels runs whose descriptor carries no short name.
const fallbackName = "unknown"

// Label builds the crash label from the application short name and
// version, in "name-version" form.
func Label(shortName, version string) string {
	if shortName == "" {
		shortName = fallbackName
	}
	return shortName + "-" + version
}

// Context holds the crash label and dump callback for the duration of
// one run invocation. Release must be called when the run phase returns,
// on both the success and fault paths; it is idempotent.
type Context struct {
	label string
	dump  DumpFn

	releaseOnce sync.Once
	released    bool
}

// NewContext builds a Context from the descriptor fields and registers
// the dump callback as the active fault handler for the label.
func NewContext(shortName, version string, dump DumpFn) *Context {
	c := &Context{label: Label(shortName, version), dump: dump}
	setActive(dump, c.label)
	return c
}

// Label returns the crash label.
func (c *Context) Label() string {
	return c.label
}

// Released reports whether Release has run.
func (c *Context) Released() bool {
	return c.released
}

// Release unregisters the active fault handler and drops the label.
// Calling it more than once has no additional effect.
func (c *Context) Release() {
	c.releaseOnce.Do(func() {
		c.released = true
		clearActive()
	})
}

// Guard invokes entry and propagates its exit code unchanged. If the run
// faults and a dump callback is present, the callback is invoked exactly
// once with the label, then the fault continues through the native panic
// path so the process terminates the way an unguarded fault would. A nil
// dump callback makes Guard equivalent to calling entry directly.
func Guard(entry func() int, dump DumpFn, label string) int {
	if dump == nil {
		return entry()
	}

	defer func() {
		if r := recover(); r != nil {
			dump(label, r)
			panic(r)
		}
	}()

	return entry()
}

// The active handler is process-global, mirroring the single crash
// handler slot the OS offers.
var (
	activeMu    sync.Mutex
	activeDump  DumpFn
	activeLabel string
)

func setActive(dump DumpFn, label string) {
	activeMu.Lock()
	defer activeMu.Unlock()
	activeDump = dump
	activeLabel = label
}

func clearActive() {
	activeMu.Lock()
	defer activeMu.Unlock()
	activeDump = nil
	activeLabel = ""
}

// Active returns the currently registered dump callback and label, for
// diagnostic code that needs to know whether a guard is in place.
func Active() (DumpFn, string) {
	activeMu.Lock()
	defer activeMu.Unlock()
	return activeDump, activeLabel
}
