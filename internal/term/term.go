// Package term resolves the color mode and exposes the palette shared by
// logging and display.
//
// Colors come from fatih/color, whose package-level NoColor switch is set
// once by [Configure] during startup. When colors are disabled every helper
// returns its input unchanged.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/backmassage/stampmatch/internal/config"
)

// Palette entries used across the CLI.
var (
	Red     = color.New(color.FgHiRed, color.Bold)
	Green   = color.New(color.FgHiGreen, color.Bold)
	Yellow  = color.New(color.FgHiYellow, color.Bold)
	Blue    = color.New(color.FgHiBlue, color.Bold)
	Cyan    = color.New(color.FgHiCyan, color.Bold)
	Magenta = color.New(color.FgHiMagenta, color.Bold)
	Muted   = color.New(color.FgHiBlack)
)

// Configure resolves mode and toggles color output globally. Call once during
// startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	color.NoColor = !resolve(mode)
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return !color.NoColor }

// Paint renders s with c when colors are enabled.
func Paint(c *color.Color, s string) string {
	if !Enabled() {
		return s
	}
	return c.Sprint(s)
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
