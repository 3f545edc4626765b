// Package lifecycle owns the process lifecycle state machine. It
// sequences the initialize, run and shutdown phases and guarantees each
// runs at most once, regardless of how many platform entry paths or
// native callbacks poke at it.
package lifecycle

import (
	"fmt"
	"sync"

	"github.com/ferrolite/mainline/internal/mainthread"
	"github.com/ferrolite/mainline/pkg/log"
)

// Controller drives the Unstarted -> Initialized -> Running ->
// Terminating -> ShutDown state machine. All transitions are internally
// synchronized; the zero value is not usable, construct with New.
type Controller struct {
	mu       sync.Mutex
	state    State
	initDone bool
	initErr  error
	logger   log.Logger
}

// New creates a controller in StateUnstarted.
func New(logger log.Logger) *Controller {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Controller{state: StateUnstarted, logger: logger}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Initialize runs the boot hook and, on success, designates the calling
// goroutine's OS thread as the process main thread and advances to
// Initialized.
//
// The call is idempotency-guarded: once the state has moved past
// Unstarted, further calls return the stored result of the first
// attempt without re-running the hook. A failed attempt leaves the state
// at Unstarted so a later retry is possible.
func (c *Controller) Initialize(boot func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateUnstarted {
		if c.initDone {
			return c.initErr
		}
		// Shut down before any initialize attempt ever ran.
		return ErrShutDown
	}

	if boot != nil {
		if err := boot(); err != nil {
			wrapped := fmt.Errorf("%w: %w", ErrInitFailed, err)
			c.logger.Error("initialization failed", log.Err(err))
			return wrapped
		}
	}

	mainthread.Designate()
	c.transition(StateInitialized, "initialize")
	c.initDone = true
	c.initErr = nil
	return nil
}

// Run invokes entry inside the Running phase. It requires the controller
// to be in StateInitialized; any other state is rejected without side
// effects. The state advances to Terminating when entry returns, on the
// panic path included.
func (c *Controller) Run(entry func() int) (int, error) {
	c.mu.Lock()
	if c.state != StateInitialized {
		state := c.state
		c.mu.Unlock()
		return 0, fmt.Errorf("%w (state %s)", ErrNotInitialized, state)
	}
	c.transition(StateRunning, "run")
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.state == StateRunning {
			c.transition(StateTerminating, "run returned")
		}
		c.mu.Unlock()
	}()

	return entry(), nil
}

// Shutdown advances the lifecycle to ShutDown and releases the
// main-thread designation. It is idempotent and safe from every state,
// including Unstarted when initialization never succeeded; in that case
// there is nothing to clean up and the call returns immediately.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateShutDown {
		return
	}
	c.transition(StateShutDown, "shutdown")
	mainthread.Release()
}

// transition records a forward state change. Callers hold c.mu.
func (c *Controller) transition(next State, reason string) {
	prev := c.state
	c.state = next
	c.logger.Info("lifecycle transition",
		log.String("from", prev.String()),
		log.String("to", next.String()),
		log.String("reason", reason),
	)
}
