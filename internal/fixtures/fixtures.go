// Package fixtures writes a small directory tree of stamped dummy files for
// trying out the scanner.
package fixtures

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/backmassage/stampmatch/internal/stamp"
)

// Subdirs are created under the fixture root, each holding the same files.
var Subdirs = []string{"sub1", "sub2"}

// Content is written into every fixture file.
const Content = "dummy content\n"

var (
	reportAt = time.Date(2024, time.October, 15, 12, 34, 56, 0, time.UTC)
	dataAt   = time.Date(2023, time.May, 1, 8, 0, 0, 0, time.UTC)
)

// Names returns the fixture filenames: two instants, each in both layouts,
// plus one file without a stamp.
func Names() []string {
	return []string{
		"report_" + stamp.Format(reportAt, stamp.LayoutYearFirst) + ".txt",
		"backup_" + stamp.Format(reportAt, stamp.LayoutDayFirst) + ".log",
		"data_" + stamp.Format(dataAt, stamp.LayoutYearFirst) + ".csv",
		"log_" + stamp.Format(dataAt, stamp.LayoutDayFirst) + ".txt",
		"no_timestamp.txt",
	}
}

// Create builds the fixture tree under dir and returns the paths it wrote.
// Existing files are left alone unless force is set.
func Create(dir string, force bool) ([]string, error) {
	var written []string
	for _, sub := range Subdirs {
		subPath := filepath.Join(dir, sub)
		if err := os.MkdirAll(subPath, 0o755); err != nil {
			return written, fmt.Errorf("create %s: %w", subPath, err)
		}
		for _, name := range Names() {
			path := filepath.Join(subPath, name)
			if !force {
				if _, err := os.Stat(path); err == nil {
					continue
				} else if !errors.Is(err, fs.ErrNotExist) {
					return written, fmt.Errorf("stat %s: %w", path, err)
				}
			}
			if err := os.WriteFile(path, []byte(Content), 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}
