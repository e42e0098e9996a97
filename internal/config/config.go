// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	LogFileEnv       = "PAODIARIO_LOG_FILE"
	VerboseEnv       = "PAODIARIO_VERBOSE"
	ToastDurationEnv = "PAODIARIO_TOAST_DURATION"
	AltScreenEnv     = "PAODIARIO_ALT_SCREEN"
	OTLPEndpointEnv  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ServiceNameEnv   = "OTEL_SERVICE_NAME"
)

const (
	DefaultToastDuration = 3 * time.Second
	DefaultServiceName   = "paodiario"
)

// Config holds settings for a run.
type Config struct {
	LogFile       string // empty disables logging
	Verbose       bool
	ToastDuration time.Duration
	AltScreen     bool
	OTLPEndpoint  string // empty disables trace export
	ServiceName   string
}

// LoadDotEnv loads variables from the given files (".env" when none are
// given). Variables already set in the environment win. Missing files are
// not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// Load reads Config from the environment. Unparseable values fall back to
// their defaults.
func Load() Config {
	return Config{
		LogFile:       strings.TrimSpace(os.Getenv(LogFileEnv)),
		Verbose:       getBool(VerboseEnv, false),
		ToastDuration: getDuration(ToastDurationEnv, DefaultToastDuration),
		AltScreen:     getBool(AltScreenEnv, true),
		OTLPEndpoint:  strings.TrimSpace(os.Getenv(OTLPEndpointEnv)),
		ServiceName:   getEnv(ServiceNameEnv, DefaultServiceName),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
