package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors the config file layout. Pointer fields distinguish
// "absent" from "explicitly false" so absent keys keep their defaults.
type FileConfig struct {
	Application ApplicationFileConfig `toml:"application"`
}

// ApplicationFileConfig is the [application] table of the config file.
type ApplicationFileConfig struct {
	Daemon   *bool `toml:"daemon"`
	Headless *bool `toml:"headless"`
	Debug    *bool `toml:"debug"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.mainlined/config.toml if the user home
// directory is accessible, otherwise an empty string.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mainlined", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies set fields of the file config into the store.
func ApplyFileConfig(s *Store, fc FileConfig) {
	applyBool(s, ScopeApplication, KeyDaemon, fc.Application.Daemon)
	applyBool(s, ScopeApplication, KeyHeadless, fc.Application.Headless)
	applyBool(s, ScopeApplication, KeyDebug, fc.Application.Debug)
}

func applyBool(s *Store, scope, key string, v *bool) {
	if v != nil {
		s.Set(scope, key, *v)
	}
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
