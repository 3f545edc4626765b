package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_Defaults(t *testing.T) {
	s := NewStore()

	tests := []struct {
		scope string
		key   string
	}{
		{ScopeApplication, KeyDaemon},
		{ScopeApplication, KeyHeadless},
		{ScopeApplication, KeyDebug},
		{"nonexistent", "key"},
	}

	for _, tt := range tests {
		if s.Bool(tt.scope, tt.key) {
			t.Errorf("Bool(%q, %q) = true, want false default", tt.scope, tt.key)
		}
	}
}

func TestStore_SetAndGet(t *testing.T) {
	s := NewStore()

	s.Set(ScopeApplication, KeyDaemon, true)
	if !s.Bool(ScopeApplication, KeyDaemon) {
		t.Error("set value not returned")
	}

	s.Set(ScopeApplication, KeyDaemon, false)
	if s.Bool(ScopeApplication, KeyDaemon) {
		t.Error("overwritten value not returned")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfigFile(t, "[application]\ndaemon = true\nheadless = false\n")

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	if fc.Application.Daemon == nil || !*fc.Application.Daemon {
		t.Error("daemon not parsed as true")
	}
	if fc.Application.Headless == nil || *fc.Application.Headless {
		t.Error("headless not parsed as false")
	}
	if fc.Application.Debug != nil {
		t.Error("absent debug key parsed as set")
	}
}

func TestLoadFileConfig_Malformed(t *testing.T) {
	path := writeConfigFile(t, "[application\ndaemon = yes")

	if _, err := LoadFileConfig(path); err == nil {
		t.Error("malformed TOML did not fail")
	}
}

func TestApplyFileConfig_AbsentKeysKeepValues(t *testing.T) {
	s := NewStore()
	s.Set(ScopeApplication, KeyDebug, true)

	daemon := true
	ApplyFileConfig(s, FileConfig{Application: ApplicationFileConfig{Daemon: &daemon}})

	if !s.Bool(ScopeApplication, KeyDaemon) {
		t.Error("daemon not applied from file")
	}
	if !s.Bool(ScopeApplication, KeyDebug) {
		t.Error("absent file key clobbered an existing value")
	}
}

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"true", "true", true},
		{"numeric", "1", true},
		{"false", "false", false},
		{"malformed ignored", "yes please", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MAINLINE_DAEMON", tt.value)

			s := NewStore()
			ApplyEnvConfig(s)

			if got := s.Bool(ScopeApplication, KeyDaemon); got != tt.want {
				t.Errorf("daemon = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	path := writeConfigFile(t, "")
	if !FileExists(path) {
		t.Error("existing file reported missing")
	}
	if FileExists(filepath.Join(t.TempDir(), "nope.toml")) {
		t.Error("missing file reported existing")
	}
}
