// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if c.Server.ShutdownTimeout.Duration < 0 {
		errs = append(errs, "server.shutdown_timeout: must not be negative")
	}

	// Source validation
	if strings.TrimSpace(c.Source.URL) == "" {
		errs = append(errs, "source.url: required")
	} else if c.IsRemoteSource() {
		if u, err := url.Parse(c.Source.URL); err != nil || u.Host == "" {
			errs = append(errs, fmt.Sprintf("source.url: invalid URL %q", c.Source.URL))
		}
	}
	if c.Source.Timeout.Duration < 0 {
		errs = append(errs, "source.timeout: must not be negative")
	}

	// Cache validation
	if c.Cache.TTL != nil && c.Cache.TTL.Duration < 0 {
		errs = append(errs, "cache.ttl: must not be negative")
	}
	if c.Cache.CacheTTL() > 0 && c.Cache.Path == "" {
		errs = append(errs, "cache.path: required when cache.ttl is positive")
	}

	// Refresh validation
	if c.Refresh.Enabled {
		if _, err := cron.ParseStandard(c.Refresh.Schedule); err != nil {
			errs = append(errs, fmt.Sprintf("refresh.schedule: invalid cron spec %q: %v", c.Refresh.Schedule, err))
		}
	}

	// Dashboard validation
	if strings.TrimSpace(c.Dashboard.FocusCountry) == "" {
		errs = append(errs, "dashboard.focus_country: required")
	}
	if c.Dashboard.ChartWidth < 0 || c.Dashboard.ChartHeight < 0 {
		errs = append(errs, fmt.Sprintf("dashboard: chart size must be positive, got %dx%d", c.Dashboard.ChartWidth, c.Dashboard.ChartHeight))
	}

	return errs
}
