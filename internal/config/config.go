// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultSourceURL is the published catalog dataset.
const DefaultSourceURL = "https://raw.githubusercontent.com/gabirdias98-cloud/netflixcontent/main/df_selecionado.csv"

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Source    SourceConfig    `toml:"source"`
	Cache     CacheConfig     `toml:"cache"`
	Refresh   RefreshConfig   `toml:"refresh"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

type ServerConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	LogLevel        string   `toml:"log_level"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

type SourceConfig struct {
	URL     string   `toml:"url"`
	Timeout Duration `toml:"timeout"`
}

type CacheConfig struct {
	Path string `toml:"path"`
	// TTL of zero disables caching; every load fetches the source.
	TTL *Duration `toml:"ttl"`
}

type RefreshConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"`
}

type DashboardConfig struct {
	FocusCountry string `toml:"focus_country"`
	ChartWidth   int    `toml:"chart_width"`
	ChartHeight  int    `toml:"chart_height"`
}

// Duration wraps time.Duration so TOML strings like "30s" decode.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// CacheTTL returns the configured TTL, or the default when unset.
func (c CacheConfig) CacheTTL() time.Duration {
	if c.TTL == nil {
		return time.Hour
	}
	return c.TTL.Duration
}

// Default returns a config populated with defaults only.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return &cfg, nil
}

// LoadWithoutValidation reads the configuration file and applies defaults,
// skipping validation and unresolved environment variable checks.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, _ := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8585
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 30 * time.Second
	}
	if c.Source.URL == "" {
		c.Source.URL = DefaultSourceURL
	}
	if c.Source.Timeout.Duration == 0 {
		c.Source.Timeout.Duration = 30 * time.Second
	}
	if c.Cache.Path == "" {
		c.Cache.Path = "./data/catalogdash.db"
	}
	if c.Refresh.Schedule == "" {
		c.Refresh.Schedule = "@every 1h"
	}
	if c.Dashboard.FocusCountry == "" {
		c.Dashboard.FocusCountry = "Brazil"
	}
	if c.Dashboard.ChartWidth == 0 {
		c.Dashboard.ChartWidth = 1024
	}
	if c.Dashboard.ChartHeight == 0 {
		c.Dashboard.ChartHeight = 512
	}
}

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// ${VAR:-default} falls back to default when VAR is unset or empty.
// Unresolved variables are left unchanged and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name := groups[1]
		hasDefault := groups[2] != ""

		value, ok := os.LookupEnv(name)
		if ok && (value != "" || !hasDefault) {
			return value
		}
		if hasDefault {
			return groups[3]
		}
		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return match
	})

	return result, missing
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsRemoteSource reports whether the source is fetched over HTTP.
func (c *Config) IsRemoteSource() bool {
	u := strings.ToLower(c.Source.URL)
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}
