package config

// This file binds CLI flags to a Config. Flags are registered on a pflag
// FlagSet owned by the cobra command tree and applied after the config file
// and environment, so only flags the user actually passed override them.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds raw flag values until [Flags.Apply] copies them into a Config.
type Flags struct {
	fs *pflag.FlagSet

	ConfigFile string
	EnvFile    string

	root         string
	reportFormat ReportFormat
	timeFormat   string
	onlyMatches  bool
	strict       bool
	verbose      bool
	colorMode    ColorMode
	forceColor   bool
	noColor      bool
	logFile      string
	logLevel     string
	noBanner     bool
}

// BindFlags registers the global flags on fs, seeding help defaults from
// [DefaultConfig].
func BindFlags(fs *pflag.FlagSet) *Flags {
	def := DefaultConfig()
	f := &Flags{fs: fs, reportFormat: def.ReportFormat, colorMode: def.ColorMode}

	fs.StringVar(&f.ConfigFile, "config", "", "YAML config file")
	fs.StringVar(&f.EnvFile, "env", "", "env file to load (default .env if present)")

	fs.StringVarP(&f.root, "root", "r", def.Root, "Directory tree to scan")
	fs.VarP(&reportFormatValue{&f.reportFormat}, "format", "o", "Scan report format: text | table | yaml")
	fs.StringVar(&f.timeFormat, "time-format", def.TimeFormat, "strftime layout for printed instants")
	fs.BoolVar(&f.onlyMatches, "only-matches", false, "Only report files with a match in another location")
	fs.BoolVar(&f.strict, "strict", false, "Abort the scan on unreadable directories instead of skipping them")

	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
	fs.Var(&colorModeValue{&f.colorMode}, "color-mode", "Color output: auto | always | never")
	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&f.logFile, "log", "l", "", "Append logs to file")
	fs.StringVar(&f.logLevel, "log-level", def.LogLevel, "Log level: debug | info | warn | error")
	fs.BoolVar(&f.noBanner, "no-banner", false, "Do not print the banner")
	return f
}

// Apply copies every flag the user set onto cfg. Unset flags leave cfg as
// loaded from defaults, file and environment.
func (f *Flags) Apply(cfg *Config) {
	changed := f.fs.Changed

	if changed("root") {
		cfg.Root = NormalizeDirArg(f.root)
	}
	if changed("format") {
		cfg.ReportFormat = f.reportFormat
	}
	if changed("time-format") {
		cfg.TimeFormat = f.timeFormat
	}
	if changed("only-matches") {
		cfg.OnlyMatches = f.onlyMatches
	}
	if changed("strict") {
		cfg.SkipUnreadable = !f.strict
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if changed("log") {
		cfg.LogFile = f.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("no-banner") {
		cfg.NoBanner = f.noBanner
	}
	if changed("color-mode") {
		cfg.ColorMode = f.colorMode
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// pflag.Value adapters so enum types can be used with fs.Var.

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch ColorMode(strings.ToLower(s)) {
	case ColorAuto:
		*c.p = ColorAuto
	case ColorAlways:
		*c.p = ColorAlways
	case ColorNever:
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}

type reportFormatValue struct{ p *ReportFormat }

func (r *reportFormatValue) String() string { return string(*r.p) }
func (r *reportFormatValue) Type() string   { return "format" }
func (r *reportFormatValue) Set(s string) error {
	switch ReportFormat(strings.ToLower(s)) {
	case ReportText:
		*r.p = ReportText
	case ReportTable:
		*r.p = ReportTable
	case ReportYAML:
		*r.p = ReportYAML
	default:
		return fmt.Errorf("invalid format %q (use 'text', 'table' or 'yaml')", s)
	}
	return nil
}
