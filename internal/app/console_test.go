package app

import (
	"errors"
	"testing"

	"github.com/ferrolite/mainline/internal/crashguard"
	"github.com/ferrolite/mainline/internal/lifecycle"
)

func TestApp_Main_ReturnsEntryCode(t *testing.T) {
	a, err := New(Descriptor{ShortName: "t", Version: "0"}, missingConfig(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var during lifecycle.State
	code := a.Main(func() int {
		during = a.State()
		return 7
	})

	if code != 7 {
		t.Errorf("Main() = %d, want 7", code)
	}
	if during != lifecycle.StateRunning {
		t.Errorf("state during entry = %v, want StateRunning", during)
	}
	if a.State() != lifecycle.StateShutDown {
		t.Errorf("state after Main = %v, want StateShutDown", a.State())
	}
}

func TestApp_Main_InitFailure(t *testing.T) {
	bootErr := errors.New("subsystem unavailable")
	a, err := New(Descriptor{ShortName: "t", Version: "0"},
		missingConfig(t),
		WithBoot(func() error { return bootErr }),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	entered := false
	code := a.Main(func() int {
		entered = true
		return 0
	})

	if code != ExitInitFailure {
		t.Errorf("Main() = %d, want ExitInitFailure", code)
	}
	if entered {
		t.Error("entry invoked despite initialization failure")
	}
	if a.State() != lifecycle.StateShutDown {
		t.Errorf("state = %v, want StateShutDown after defensive shutdown", a.State())
	}
}

func TestApp_Main_GuardedRun(t *testing.T) {
	dumps := 0
	a, err := New(Descriptor{
		ShortName:    "myapp",
		Version:      "1.2.3",
		DumpCallback: func(label string, reason interface{}) { dumps++ },
	}, missingConfig(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var activeLabel string
	code := a.Main(func() int {
		_, activeLabel = crashguard.Active()
		return 7
	})

	if code != 7 {
		t.Errorf("Main() = %d, want 7", code)
	}
	if activeLabel != "myapp-1.2.3" {
		t.Errorf("active label during run = %q, want myapp-1.2.3", activeLabel)
	}
	if dumps != 0 {
		t.Errorf("dump callback ran %d times on a clean run, want 0", dumps)
	}
	if active, _ := crashguard.Active(); active != nil {
		t.Error("crash context not released after run")
	}
}

func TestApp_Main_DebugBypassesGuard(t *testing.T) {
	a, err := New(Descriptor{
		ShortName:    "myapp",
		Version:      "1.2.3",
		DumpCallback: func(label string, reason interface{}) {},
	}, missingConfig(t), WithDebug(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	guarded := true
	a.Main(func() int {
		active, _ := crashguard.Active()
		guarded = active != nil
		return 0
	})

	if guarded {
		t.Error("debug mode still routed the run through the crash guard")
	}
}

func TestApp_Main_NoDumpCallbackRunsUnguarded(t *testing.T) {
	a, err := New(Descriptor{ShortName: "myapp", Version: "1.2.3"}, missingConfig(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	guarded := true
	a.Main(func() int {
		active, _ := crashguard.Active()
		guarded = active != nil
		return 0
	})

	if guarded {
		t.Error("run was guarded without a dump callback")
	}
}
