package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/kova98/karmakaze/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range append([]string{"TIME_FORMAT", "TIME_ZONE", "LOG_LEVEL", "OUTPUT_FORMAT"}, localeVars...) {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	LoadConfig()

	assert.Equal(t, enums.TimeFormatLocale, Config.TimeFormat)
	assert.Equal(t, language.Und, Config.TimeLocale)
	assert.Equal(t, time.Local, Config.TimeZone)
	assert.Equal(t, slog.LevelInfo, Config.LogLevel)
	assert.Equal(t, OutputJSON, Config.OutputFormat)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIME_FORMAT", "concise")
	t.Setenv("TIME_LOCALE", "de_DE.UTF-8")
	t.Setenv("TIME_ZONE", "Europe/Zagreb")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("OUTPUT_FORMAT", "YAML")

	LoadConfig()

	assert.Equal(t, enums.TimeFormatConcise, Config.TimeFormat)
	assert.Equal(t, "de-DE", Config.TimeLocale.String())
	assert.Equal(t, "Europe/Zagreb", Config.TimeZone.String())
	assert.Equal(t, slog.LevelDebug, Config.LogLevel)
	assert.Equal(t, OutputYAML, Config.OutputFormat)
}

func TestLoadConfig_InvalidFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIME_FORMAT", "relative")
	t.Setenv("TIME_ZONE", "Mars/Olympus")
	t.Setenv("LOG_LEVEL", "LOUD")
	t.Setenv("OUTPUT_FORMAT", "xml")

	LoadConfig()

	assert.Equal(t, enums.TimeFormatLocale, Config.TimeFormat)
	assert.Equal(t, time.Local, Config.TimeZone)
	assert.Equal(t, slog.LevelInfo, Config.LogLevel)
	assert.Equal(t, OutputJSON, Config.OutputFormat)
}

func TestLoadConfig_LocaleFallbackOrder(t *testing.T) {
	clearEnv(t)
	t.Setenv("LANG", "fr_FR.UTF-8")
	t.Setenv("LC_TIME", "sv_SE.UTF-8")

	LoadConfig()

	assert.Equal(t, "sv-SE", Config.TimeLocale.String())
}

func TestTimeFormatter(t *testing.T) {
	cfg := AppConfig{TimeFormat: enums.TimeFormatLocale, TimeZone: time.UTC, TimeLocale: language.Und}

	got, ok := cfg.TimeFormatter().Format(1700000000.0)

	require.True(t, ok)
	assert.Equal(t, "11/14/23, 22:13:20", got)
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat(" Json ")
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, f)

	_, err = ParseOutputFormat("toml")
	assert.True(t, errors.Is(err, ErrInvalidOutputFormat))
}
