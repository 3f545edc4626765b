package config

import (
	"os"
	"strconv"
)

// ApplyEnvConfig applies configuration from environment variables
// (MAINLINE_*). Environment values override file values. Malformed
// values are ignored rather than failing startup; the process is about
// to report its configuration anyway.
func ApplyEnvConfig(s *Store) {
	applyEnvBool(s, ScopeApplication, KeyDaemon, os.Getenv("MAINLINE_DAEMON"))
	applyEnvBool(s, ScopeApplication, KeyHeadless, os.Getenv("MAINLINE_HEADLESS"))
	applyEnvBool(s, ScopeApplication, KeyDebug, os.Getenv("MAINLINE_DEBUG"))
}

func applyEnvBool(s *Store, scope, key, raw string) {
	if raw == "" {
		return
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return
	}
	s.Set(scope, key, v)
}
