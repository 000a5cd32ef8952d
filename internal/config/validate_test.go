// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidate_Defaults(t *testing.T) {
	assert.Empty(t, Default().Validate())
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 70000
	assert.True(t, containsError(cfg.Validate(), "server.port"))
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Server.LogLevel = "verbose"
	assert.True(t, containsError(cfg.Validate(), "server.log_level"))
}

func TestValidate_InvalidSourceURL(t *testing.T) {
	cfg := Default()
	cfg.Source.URL = "https://"
	assert.True(t, containsError(cfg.Validate(), "source.url"))
}

func TestValidate_LocalSourceAccepted(t *testing.T) {
	cfg := Default()
	cfg.Source.URL = "./testdata/titles.csv"
	assert.Empty(t, cfg.Validate())
}

func TestValidate_NegativeTTL(t *testing.T) {
	cfg := Default()
	cfg.Cache.TTL = &Duration{Duration: -time.Minute}
	assert.True(t, containsError(cfg.Validate(), "cache.ttl"))
}

func TestValidate_CachePathRequired(t *testing.T) {
	cfg := Default()
	cfg.Cache.Path = ""
	assert.True(t, containsError(cfg.Validate(), "cache.path"))

	cfg.Cache.TTL = &Duration{}
	assert.False(t, containsError(cfg.Validate(), "cache.path"), "no path needed when caching is off")
}

func TestValidate_RefreshSchedule(t *testing.T) {
	cfg := Default()
	cfg.Refresh.Enabled = true
	cfg.Refresh.Schedule = "every now and then"
	assert.True(t, containsError(cfg.Validate(), "refresh.schedule"))

	cfg.Refresh.Schedule = "0 */6 * * *"
	assert.Empty(t, cfg.Validate())

	cfg.Refresh.Schedule = "@daily"
	assert.Empty(t, cfg.Validate())
}

func TestValidate_DisabledRefreshSkipsSchedule(t *testing.T) {
	cfg := Default()
	cfg.Refresh.Schedule = "garbage"
	assert.Empty(t, cfg.Validate())
}

func TestValidate_FocusCountry(t *testing.T) {
	cfg := Default()
	cfg.Dashboard.FocusCountry = "  "
	assert.True(t, containsError(cfg.Validate(), "dashboard.focus_country"))
}
