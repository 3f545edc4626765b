package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferrolite/mainline/pkg/log"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[application]\ndaemon = false\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s := NewStore()
	w := NewWatcher(path, s, log.NewNoopLogger())
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("[application]\ndaemon = true\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if s.Bool(ScopeApplication, KeyDaemon) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("store never picked up the changed config file")
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w := NewWatcher(path, NewStore(), log.NewNoopLogger())
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	w.Stop()
	w.Stop()
}
