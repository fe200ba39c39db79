package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable read by [LoadEnv].
const EnvPrefix = "STAMPMATCH_"

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values. An empty path is a no-op.
func LoadFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// LoadEnv loads envFile (".env" when empty) into the process environment and
// then applies STAMPMATCH_* variables to cfg. A missing default .env file is
// not an error; a missing explicitly named file is.
func LoadEnv(envFile string, cfg *Config) error {
	file := envFile
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil {
		if envFile != "" || !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load env file '%s': %w", file, err)
		}
	}
	return applyEnv(cfg)
}

// applyEnv copies set STAMPMATCH_* variables into cfg.
func applyEnv(cfg *Config) error {
	cfg.Root = getEnv("ROOT", cfg.Root)
	cfg.ReportFormat = ReportFormat(getEnv("REPORT_FORMAT", string(cfg.ReportFormat)))
	cfg.TimeFormat = getEnv("TIME_FORMAT", cfg.TimeFormat)
	cfg.ColorMode = ColorMode(getEnv("COLOR", string(cfg.ColorMode)))
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	bools := []struct {
		key string
		dst *bool
	}{
		{"SKIP_UNREADABLE", &cfg.SkipUnreadable},
		{"ONLY_MATCHES", &cfg.OnlyMatches},
		{"VERBOSE", &cfg.Verbose},
		{"NO_BANNER", &cfg.NoBanner},
	}
	for _, b := range bools {
		raw := getEnv(b.key, "")
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, b.key, err)
		}
		*b.dst = v
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}
