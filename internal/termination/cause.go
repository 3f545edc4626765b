package termination

import (
	"os"
	"syscall"
)

// Cause is the platform-independent reason behind a termination request.
type Cause int

const (
	CauseUnknown Cause = iota
	CauseUserInterrupt
	CauseSystemShutdown
	CauseSystemLogoff
	CauseApplicationClose
)

// String returns a human-readable representation of the cause.
func (c Cause) String() string {
	switch c {
	case CauseUserInterrupt:
		return "UserInterrupt"
	case CauseSystemShutdown:
		return "SystemShutdown"
	case CauseSystemLogoff:
		return "SystemLogoff"
	case CauseApplicationClose:
		return "ApplicationClose"
	default:
		return "Unknown"
	}
}

// Request is the unified termination signal. It is immutable; the bridge
// produces it and the event collaborator consumes it exactly once.
type Request struct {
	Cause Cause

	// MustDefer is set when the OS is about to force the process down
	// and a shutdown deferral should be negotiated where the platform
	// supports one.
	MustDefer bool
}

// Payload is the JSON body of a termination CloudEvent.
type Payload struct {
	Cause     string `json:"cause"`
	MustDefer bool   `json:"mustDefer"`
	Native    string `json:"native,omitempty"`
}

// ClassifySignal maps a POSIX signal to a termination request. The
// second return reports whether the signal represents an intent to
// terminate at all; unmapped signals produce no request.
func ClassifySignal(sig os.Signal) (Request, bool) {
	switch sig {
	case syscall.SIGINT, syscall.SIGQUIT:
		return Request{Cause: CauseUserInterrupt}, true
	case syscall.SIGTERM, syscall.SIGKILL:
		return Request{Cause: CauseSystemShutdown, MustDefer: true}, true
	default:
		return Request{Cause: CauseUnknown}, false
	}
}

// SignalName returns the conventional name of a termination signal.
func SignalName(sig os.Signal) string {
	switch sig {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGQUIT:
		return "SIGQUIT"
	case syscall.SIGTERM:
		return "SIGTERM"
	case syscall.SIGKILL:
		return "SIGKILL"
	default:
		return sig.String()
	}
}

// Windows console control event codes, as delivered to a console control
// handler. Values are fixed by the console API.
const (
	ctrlCEvent        uint32 = 0
	ctrlBreakEvent    uint32 = 1
	ctrlCloseEvent    uint32 = 2
	ctrlLogoffEvent   uint32 = 5
	ctrlShutdownEvent uint32 = 6
)

// consoleDecision is the outcome of classifying one console control event.
type consoleDecision struct {
	name    string
	request Request
	post    bool
	handled bool
}

// classifyConsoleControl maps a console control event to a termination
// decision. CTRL_BREAK is recognized and reported handled but posts no
// request. Unknown codes are reported unhandled so the OS falls through
// to the next handler rather than acting on a guessed intent.
func classifyConsoleControl(code uint32, daemon bool) consoleDecision {
	switch code {
	case ctrlCEvent:
		return consoleDecision{name: "CTRL_C", request: Request{Cause: CauseUserInterrupt}, post: true, handled: true}
	case ctrlBreakEvent:
		return consoleDecision{name: "CTRL_BREAK", handled: true}
	case ctrlCloseEvent:
		return consoleDecision{name: "CTRL_CLOSE", request: Request{Cause: CauseSystemShutdown, MustDefer: true}, post: true, handled: true}
	case ctrlLogoffEvent:
		return consoleDecision{name: "CTRL_LOGOFF", request: Request{Cause: CauseSystemLogoff, MustDefer: !daemon}, post: true, handled: true}
	case ctrlShutdownEvent:
		return consoleDecision{name: "CTRL_SHUTDOWN", request: Request{Cause: CauseSystemShutdown, MustDefer: true}, post: true, handled: true}
	default:
		return consoleDecision{name: "UNKNOWN", request: Request{Cause: CauseUnknown}}
	}
}
