// Package config is the configuration collaborator for the lifecycle
// core. It answers scoped boolean lookups layered from defaults, a TOML
// config file and MAINLINE_* environment variables, and can keep itself
// current with an fsnotify watcher on the config file.
package config

import "sync"

// Source answers scoped boolean configuration lookups.
type Source interface {
	Bool(scope, key string) bool
}

// Scope and key names understood by the lifecycle core.
const (
	ScopeApplication = "application"

	// KeyDaemon selects daemon behavior: a daemon does not treat session
	// logoff as a reason to terminate.
	KeyDaemon = "daemon"

	// KeyHeadless makes the UI entry adapter behave like the console one.
	KeyHeadless = "headless"

	// KeyDebug bypasses the crash guard so faults stay fully debuggable
	// in-process.
	KeyDebug = "debug"
)

// Store is an in-memory Source safe for concurrent use. Lookups for
// unknown keys return false, which makes false the default polarity for
// every flag the core reads.
type Store struct {
	mu     sync.RWMutex
	values map[string]bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]bool)}
}

// Bool returns the value for scope/key, or false when unset.
func (s *Store) Bool(scope, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[scope+"."+key]
}

// Set stores a value for scope/key.
func (s *Store) Set(scope, key string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[scope+"."+key] = value
}
