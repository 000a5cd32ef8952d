package config

import (
	_ "embed"
	"os"
	"path/filepath"
)

//go:embed default_config.toml
var defaultConfig string

// WriteDefault writes the commented default config to path, creating the
// parent directory.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0o644)
}
