//go:build windows

package termination

import (
	"time"

	"golang.org/x/sys/windows"

	"github.com/ferrolite/mainline/pkg/log"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

// setConsoleCtrlHandler adds or removes a console control handler.
// x/sys/windows exposes the shutdown-parameter calls but not this one,
// so it goes through kernel32 directly.
func setConsoleCtrlHandler(handler uintptr, add bool) error {
	var addArg uintptr
	if add {
		addArg = 1
	}
	r1, _, err := procSetConsoleCtrlHandler.Call(handler, addArg)
	if r1 == 0 {
		return err
	}
	return nil
}

// install registers a native console control handler. The handler runs
// on a thread the OS spawns per event; it classifies the control code,
// posts the termination event, negotiates the maximum shutdown deferral
// and pauses briefly so the application gets a window to react.
func (b *Bridge) install() func() {
	handler := windows.NewCallback(func(ctrlType uint32) uintptr {
		return b.handleConsoleControl(ctrlType)
	})

	if err := setConsoleCtrlHandler(handler, true); err != nil {
		b.logger.Warn("console control handler registration failed", log.Err(err))
		return func() {}
	}

	return func() {
		if err := setConsoleCtrlHandler(handler, false); err != nil {
			b.logger.Warn("console control handler removal failed", log.Err(err))
		}
	}
}

func (b *Bridge) handleConsoleControl(ctrlType uint32) uintptr {
	d := classifyConsoleControl(ctrlType, b.daemonMode())
	b.logger.Info("caught console control",
		log.String("control", d.name),
		log.Int("code", int(ctrlType)),
		log.String("cause", d.request.Cause.String()),
	)

	// Every posted event gets the deferral: the OS may tear the process
	// down as soon as this handler returns, whatever the cause was.
	if d.post {
		b.post(d.request, d.name)
		b.deferShutdown()
	}

	if d.handled {
		return 1
	}
	return 0
}

// deferShutdown asks the OS for the longest shutdown grace it will
// grant, then holds the handler thread for the bounded pause. Returning
// immediately would let the OS kill the process before the posted event
// is ever observed.
func (b *Bridge) deferShutdown() {
	var level, flags uint32
	if err := windows.GetProcessShutdownParameters(&level, &flags); err == nil {
		if err := windows.SetProcessShutdownParameters(level, windows.SHUTDOWN_NORETRY); err != nil {
			b.logger.Warn("shutdown deferral request failed", log.Err(err))
		}
	}
	time.Sleep(deferralPause)
}
