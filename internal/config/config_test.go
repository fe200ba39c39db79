package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/srv/data", "/srv/data"},
		{"single trailing slash", "/srv/data/", "/srv/data"},
		{"multiple trailing slashes", "/srv/data///", "/srv/data"},
		{"root path", "/", "/"},
		{"relative path", "data", "data"},
		{"relative with slash", "data/", "data"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"upper case is normalized", "NEVER", false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "sometimes", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidColorMode) {
				t.Errorf("Validate() error = %v, want ErrInvalidColorMode", err)
			}
		})
	}
}

func TestValidate_ReportFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  ReportFormat
		wantErr bool
	}{
		{"text is valid", ReportText, false},
		{"table is valid", ReportTable, false},
		{"yaml is valid", ReportYAML, false},
		{"empty is invalid", "", true},
		{"json is invalid", "json", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ReportFormat = tt.format
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresRootAndTimeFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Root = ""
	if err := cfg.Validate(); !errors.Is(err, ErrEmptyRoot) {
		t.Errorf("Validate() = %v, want ErrEmptyRoot", err)
	}

	cfg = DefaultConfig()
	cfg.TimeFormat = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrEmptyTimeFormat) {
		t.Errorf("Validate() = %v, want ErrEmptyTimeFormat", err)
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Root != "data" {
		t.Errorf("default Root = %q, want %q", cfg.Root, "data")
	}
	if !cfg.SkipUnreadable {
		t.Error("default SkipUnreadable should be true")
	}
	if cfg.ReportFormat != ReportText {
		t.Errorf("default ReportFormat = %q, want %q", cfg.ReportFormat, ReportText)
	}
	if cfg.TimeFormat != DefaultTimeFormat {
		t.Errorf("default TimeFormat = %q, want %q", cfg.TimeFormat, DefaultTimeFormat)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stampmatch.yaml")
	content := "root: /srv/archive\nreport_format: table\nskip_unreadable: false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Root != "/srv/archive" {
		t.Errorf("Root = %q", cfg.Root)
	}
	if cfg.ReportFormat != ReportTable {
		t.Errorf("ReportFormat = %q", cfg.ReportFormat)
	}
	if cfg.SkipUnreadable {
		t.Error("SkipUnreadable should be false")
	}
	// Keys absent from the file keep their defaults.
	if cfg.TimeFormat != DefaultTimeFormat {
		t.Errorf("TimeFormat = %q, want default", cfg.TimeFormat)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile("", &cfg); err != nil {
		t.Errorf("empty path should be a no-op, got %v", err)
	}
	if err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg); err == nil {
		t.Error("missing file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("root: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(bad, &cfg); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("STAMPMATCH_ROOT", "/from/env")
	t.Setenv("STAMPMATCH_ONLY_MATCHES", "true")
	t.Setenv("STAMPMATCH_COLOR", "never")

	envFile := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envFile, []byte("STAMPMATCH_TIME_FORMAT=%d/%m/%Y\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { os.Unsetenv("STAMPMATCH_TIME_FORMAT") })

	cfg := DefaultConfig()
	if err := LoadEnv(envFile, &cfg); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}

	if cfg.Root != "/from/env" {
		t.Errorf("Root = %q", cfg.Root)
	}
	if !cfg.OnlyMatches {
		t.Error("OnlyMatches should be true")
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q", cfg.ColorMode)
	}
	if cfg.TimeFormat != "%d/%m/%Y" {
		t.Errorf("TimeFormat = %q", cfg.TimeFormat)
	}
}

func TestLoadEnv_MissingFiles(t *testing.T) {
	chdir(t, t.TempDir())
	cfg := DefaultConfig()
	if err := LoadEnv("", &cfg); err != nil {
		t.Errorf("missing default .env should be ignored, got %v", err)
	}
	if err := LoadEnv("does-not-exist.env", &cfg); err == nil {
		t.Error("missing explicit env file should fail")
	}
}

func TestLoadEnv_InvalidBool(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STAMPMATCH_VERBOSE", "very")
	cfg := DefaultConfig()
	if err := LoadEnv("", &cfg); err == nil {
		t.Error("invalid boolean should fail")
	}
}

func TestFlags_ApplyOnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := BindFlags(fs)
	if err := fs.Parse([]string{"--root", "/mnt/photos/", "--strict", "-o", "yaml", "--no-color"}); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.TimeFormat = "%H:%M" // from file/env, must survive
	f.Apply(&cfg)

	if cfg.Root != "/mnt/photos" {
		t.Errorf("Root = %q, want normalized /mnt/photos", cfg.Root)
	}
	if cfg.SkipUnreadable {
		t.Error("--strict should clear SkipUnreadable")
	}
	if cfg.ReportFormat != ReportYAML {
		t.Errorf("ReportFormat = %q", cfg.ReportFormat)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q", cfg.ColorMode)
	}
	if cfg.TimeFormat != "%H:%M" {
		t.Errorf("unset --time-format overwrote TimeFormat: %q", cfg.TimeFormat)
	}
}

func TestFlags_InvalidEnum(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	if err := fs.Parse([]string{"--format", "xml"}); err == nil {
		t.Error("invalid --format should fail to parse")
	}
	if err := fs.Parse([]string{"--color-mode", "rainbow"}); err == nil {
		t.Error("invalid --color-mode should fail to parse")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
