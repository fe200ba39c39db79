// Package config holds runtime configuration: defaults, config file and
// environment loading, CLI flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ReportFormat selects how scan results are printed.
type ReportFormat string

const (
	ReportText  ReportFormat = "text"  // Per-file listing (default).
	ReportTable ReportFormat = "table" // One row per instant group.
	ReportYAML  ReportFormat = "yaml"  // Machine-readable groups.
)

// Sentinel errors returned by [Config.Validate].
var (
	ErrInvalidColorMode    = errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	ErrInvalidReportFormat = errors.New("invalid report format (use 'text', 'table' or 'yaml')")
	ErrEmptyRoot           = errors.New("scan root must not be empty")
	ErrEmptyTimeFormat     = errors.New("time format must not be empty")
)

// DefaultTimeFormat renders instants the way they are printed in reports:
// "2024-10-15 12:34:56".
const DefaultTimeFormat = "%Y-%m-%d %H:%M:%S"

// Config holds all runtime settings. It is populated by [DefaultConfig], then
// overlaid by [LoadFile], [LoadEnv] and finally CLI flags bound with
// [BindFlags]. Field tags name the keys used in YAML files.
type Config struct {
	// Scan settings.
	Root           string       `yaml:"root"`            // Default: "data".
	SkipUnreadable bool         `yaml:"skip_unreadable"` // Default: true. Cleared by --strict.
	OnlyMatches    bool         `yaml:"only_matches"`    // Print only files with a match elsewhere.
	ReportFormat   ReportFormat `yaml:"report_format"`   // Default: "text".
	TimeFormat     string       `yaml:"time_format"`     // strftime layout. Default: DefaultTimeFormat.

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color"`    // Default: "auto".
	LogFile   string    `yaml:"log_file"` // Optional log file path.
	LogLevel  string    `yaml:"log_level"`
	NoBanner  bool      `yaml:"no_banner"`
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// files, environment and flags apply overrides.
func DefaultConfig() Config {
	return Config{
		Root:           "data",
		SkipUnreadable: true,
		OnlyMatches:    false,
		ReportFormat:   ReportText,
		TimeFormat:     DefaultTimeFormat,
		Verbose:        false,
		ColorMode:      ColorAuto,
		LogLevel:       "info",
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that the scan root
// and time format are set. Enum values are lower-cased in place.
func (c *Config) Validate() error {
	c.ColorMode = ColorMode(strings.ToLower(string(c.ColorMode)))
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, c.ColorMode)
	}

	c.ReportFormat = ReportFormat(strings.ToLower(string(c.ReportFormat)))
	switch c.ReportFormat {
	case ReportText, ReportTable, ReportYAML:
		// valid
	default:
		return fmt.Errorf("%w: %q", ErrInvalidReportFormat, c.ReportFormat)
	}

	if strings.TrimSpace(c.TimeFormat) == "" {
		return ErrEmptyTimeFormat
	}
	if c.Root == "" {
		return ErrEmptyRoot
	}
	return nil
}

func (c *Config) String() string {
	logFile := c.LogFile
	if logFile == "" {
		logFile = "(not set)"
	}
	return fmt.Sprintf(`Current Configuration:
======================
Root:             %s
Skip unreadable:  %t
Only matches:     %t
Report format:    %s
Time format:      %s
Verbose:          %t
Color:            %s
Log file:         %s
Log level:        %s`,
		c.Root,
		c.SkipUnreadable,
		c.OnlyMatches,
		c.ReportFormat,
		c.TimeFormat,
		c.Verbose,
		c.ColorMode,
		logFile,
		c.LogLevel,
	)
}
