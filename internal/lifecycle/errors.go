package lifecycle

import "errors"

// Errors returned by the lifecycle controller. Callers check them with
// errors.Is.
var (
	// ErrInitFailed wraps the boot hook's failure; the process must not
	// proceed to the run phase.
	ErrInitFailed = errors.New("mainline: initialization failed")

	// ErrNotInitialized is returned when Run is attempted from any state
	// other than Initialized.
	ErrNotInitialized = errors.New("mainline: run requires successful initialization")

	// ErrShutDown is returned when Initialize is attempted after the
	// lifecycle has already been shut down without a prior attempt.
	ErrShutDown = errors.New("mainline: lifecycle already shut down")
)
