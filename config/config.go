package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kova98/karmakaze/enums"
	"github.com/kova98/karmakaze/timefmt"
	"golang.org/x/text/language"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type AppConfig struct {
	TimeFormat   enums.TimeFormat
	TimeLocale   language.Tag
	TimeZone     *time.Location
	LogLevel     slog.Level
	OutputFormat string // OutputJSON or OutputYAML
}

var Config AppConfig

var ErrInvalidOutputFormat = errors.New("invalid output format")

// localeVars are consulted in order, the way the C library resolves LC_TIME.
var localeVars = []string{"TIME_LOCALE", "LC_ALL", "LC_TIME", "LANG"}

func LoadConfig() {
	cfg := AppConfig{}

	var err error
	cfg.TimeFormat, err = enums.ParseTimeFormat(loadOptional("TIME_FORMAT", string(enums.TimeFormatLocale)))
	if err != nil {
		slog.Error("Invalid TIME_FORMAT", "error", err)
		cfg.TimeFormat = enums.TimeFormatLocale
	}

	cfg.TimeLocale = timefmt.ParseLocale(loadFirst(localeVars, "C"))

	cfg.TimeZone, err = parseTimeZone(loadOptional("TIME_ZONE", ""))
	if err != nil {
		slog.Error("Invalid TIME_ZONE", "error", err)
		cfg.TimeZone = time.Local
	}

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	cfg.OutputFormat, err = ParseOutputFormat(loadOptional("OUTPUT_FORMAT", OutputJSON))
	if err != nil {
		slog.Error("Invalid OUTPUT_FORMAT", "error", err)
		cfg.OutputFormat = OutputJSON
	}

	Config = cfg
}

// TimeFormatter builds the timestamp formatter the configuration describes.
func (c AppConfig) TimeFormatter() *timefmt.Formatter {
	return timefmt.New(c.TimeFormat, c.TimeZone, c.TimeLocale)
}

func ParseOutputFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case OutputJSON, OutputYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOutputFormat, s)
}

func parseTimeZone(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func loadFirst(keys []string, defaultValue string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return defaultValue
}
