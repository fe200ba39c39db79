// Package logging provides the leveled console logger used by every command.
//
// It is a thin layer over logrus: lines are rendered as
// "2006-01-02 15:04:05 [LEVEL] text", level tags are colored on the console
// when term colors are enabled, ERROR goes to stderr, and an optional log
// file receives the same lines without color.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/backmassage/stampmatch/internal/config"
	"github.com/backmassage/stampmatch/internal/term"
)

// tagKey marks entries that carry a custom tag (SUCCESS) instead of the
// logrus level name.
const tagKey = "tag"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	entry *logrus.Logger
	file  *os.File
}

// NewLogger configures term colors from cfg, builds the logrus backend and
// optionally opens cfg.LogFile for appending. Console lines go to stdout,
// errors to stderr. Call Close() when done.
func NewLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	level := logrus.InfoLevel
	if cfg.LogLevel != "" {
		parsed, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		level = parsed
	}
	if cfg.Verbose {
		level = logrus.DebugLevel
	}

	lg := logrus.New()
	lg.SetOutput(io.Discard)
	lg.SetLevel(level)

	l := &Logger{entry: lg}
	console := &lineFormatter{color: term.Enabled()}
	lg.AddHook(&sinkHook{w: stdout, formatter: console, levels: []logrus.Level{
		logrus.WarnLevel, logrus.InfoLevel, logrus.DebugLevel, logrus.TraceLevel,
	}})
	lg.AddHook(&sinkHook{w: stderr, formatter: console, levels: []logrus.Level{
		logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel,
	}})

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		lg.AddHook(&sinkHook{w: f, formatter: &lineFormatter{}, levels: logrus.AllLevels})
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Success logs at INFO level with a green SUCCESS tag.
func (l *Logger) Success(format string, args ...interface{}) {
	l.entry.WithField(tagKey, "SUCCESS").Infof(format, args...)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Debug logs at DEBUG level (cyan); dropped unless verbose or log level debug.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// lineFormatter renders "ts [LEVEL] message key=value ...".
type lineFormatter struct {
	color bool
}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	tag := strings.ToUpper(e.Level.String())
	if tag == "WARNING" {
		tag = "WARN"
	}
	c := levelColor(e.Level)
	if t, ok := e.Data[tagKey].(string); ok {
		tag = t
		c = term.Green
	}

	var b strings.Builder
	b.WriteString(e.Time.Format("2006-01-02 15:04:05"))
	b.WriteString(" ")
	if f.color {
		b.WriteString(c.Sprint("[" + tag + "]"))
	} else {
		b.WriteString("[" + tag + "]")
	}
	b.WriteString(" ")
	b.WriteString(e.Message)
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		if k != tagKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

func levelColor(lvl logrus.Level) *color.Color {
	switch lvl {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return term.Red
	case logrus.WarnLevel:
		return term.Yellow
	case logrus.DebugLevel, logrus.TraceLevel:
		return term.Cyan
	default:
		return term.Blue
	}
}

// sinkHook writes formatted entries of the given levels to w.
type sinkHook struct {
	mu        sync.Mutex
	w         io.Writer
	formatter logrus.Formatter
	levels    []logrus.Level
}

func (h *sinkHook) Levels() []logrus.Level { return h.levels }

func (h *sinkHook) Fire(e *logrus.Entry) error {
	line, err := h.formatter.Format(e)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(line)
	return err
}
