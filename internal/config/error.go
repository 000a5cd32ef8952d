package config

import (
	"fmt"
	"strings"
)

// ConfigError collects every problem found in one config file so they can
// be reported together.
type ConfigError struct {
	Path    string
	Missing []string // unresolved ${VAR} references
	Errors  []string // failed checks from Validate
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "config %s: ", e.Path)
	}
	fmt.Fprintf(&b, "%d problem(s)", len(e.Missing)+len(e.Errors))
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "\n  unset environment variables: %s", strings.Join(e.Missing, ", "))
	}
	for _, msg := range e.Errors {
		fmt.Fprintf(&b, "\n  %s", msg)
	}
	return b.String()
}

// HasErrors reports whether any problem was recorded.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
