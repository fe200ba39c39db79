package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/caiguanhao/strftime"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/stampmatch/internal/config"
	"github.com/backmassage/stampmatch/internal/display"
	"github.com/backmassage/stampmatch/internal/term"
)

// ReportOptions controls [WriteReport].
type ReportOptions struct {
	Format      config.ReportFormat
	TimeFormat  string // strftime layout; config.DefaultTimeFormat when empty.
	OnlyMatches bool
	Now         func() time.Time // Reference for the table's age column; time.Now when nil.
}

// WriteReport prints gs to w in the requested format.
func WriteReport(w io.Writer, gs Groups, opts ReportOptions) error {
	if opts.TimeFormat == "" {
		opts.TimeFormat = config.DefaultTimeFormat
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	groups := gs.Groups
	if opts.OnlyMatches {
		groups = gs.Matches()
	}

	switch opts.Format {
	case config.ReportTable:
		writeTable(w, groups, opts)
		return nil
	case config.ReportYAML:
		return writeYAML(w, groups, gs.Dropped)
	default:
		writeText(w, groups, opts)
		return nil
	}
}

// FormatInstant renders t with a strftime layout.
func FormatInstant(t time.Time, layout string) string {
	return strftime.Format(layout, t)
}

// writeText lists every file with its parsed instant and the other files
// sharing it.
func writeText(w io.Writer, groups []Group, opts ReportOptions) {
	for _, g := range groups {
		ts := FormatInstant(g.Instant, opts.TimeFormat)
		for _, path := range g.Paths {
			fmt.Fprintf(w, "File: %s\n", path)
			fmt.Fprintf(w, "  Parsed timestamp: %s\n", term.Paint(term.Cyan, ts))
			others := g.Others(path)
			if len(others) == 0 {
				fmt.Fprintln(w, term.Paint(term.Muted, "  No matching files found in other subdirs."))
				continue
			}
			fmt.Fprintln(w, "  Matching files in other subdirs:")
			for _, o := range others {
				fmt.Fprintf(w, "    %s\n", term.Paint(term.Green, o))
			}
		}
	}
}

// writeTable renders one row per file, with the instant and its age shown
// once per group. Row lines are drawn as soon as a group spans several rows.
func writeTable(w io.Writer, groups []Group, opts ReportOptions) {
	now := opts.Now()
	rows := make([][]string, 0, len(groups))
	separate := false
	for _, g := range groups {
		separate = separate || g.IsMatch()
		ts := FormatInstant(g.Instant, opts.TimeFormat)
		age := humanize.RelTime(g.Instant, now, "ago", "from now")
		for i, path := range g.Paths {
			if i > 0 {
				age = ""
			}
			rows = append(rows, []string{ts, age, fmt.Sprintf("%d", len(g.Paths)), path})
		}
	}
	tableOpts := []display.TableOption{display.WithMergedCells()}
	if separate {
		tableOpts = append(tableOpts, display.WithRowSeparator())
	}
	display.RenderTable(w, []string{"Instant", "Age", "Files", "Path"}, rows, tableOpts...)
}

type yamlReport struct {
	Groups  []yamlGroup `yaml:"groups"`
	Dropped []string    `yaml:"dropped,omitempty"`
}

type yamlGroup struct {
	Instant string   `yaml:"instant"`
	Files   []string `yaml:"files"`
}

func writeYAML(w io.Writer, groups []Group, dropped []string) error {
	report := yamlReport{Groups: make([]yamlGroup, 0, len(groups)), Dropped: dropped}
	for _, g := range groups {
		report.Groups = append(report.Groups, yamlGroup{
			Instant: g.Instant.Format(time.RFC3339),
			Files:   g.Paths,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}
