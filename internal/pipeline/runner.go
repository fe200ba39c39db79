package pipeline

import (
	"context"
	"io"
	"path/filepath"

	"github.com/backmassage/stampmatch/internal/config"
)

// Logger is the minimal logging interface needed by Run. Defined here so the
// pipeline stays testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Run is the scan entry point: discover stamped files under cfg.Root, group
// them by instant, write the report to w, and return aggregate stats.
func Run(ctx context.Context, cfg *config.Config, log Logger, w io.Writer) (RunStats, Groups, error) {
	var stats RunStats

	files, err := Discover(ctx, cfg.Root, DiscoverOptions{
		SkipUnreadable: cfg.SkipUnreadable,
		OnSkip: func(path string, err error) {
			stats.Skipped++
			log.Warn("Skipping unreadable entry %s: %v", path, err)
		},
	})
	if err != nil {
		return stats, Groups{}, err
	}

	stats.Candidates = len(files)
	if len(files) == 0 {
		log.Warn("No files with timestamp substrings found in %s", cfg.Root)
		return stats, Groups{}, nil
	}
	log.Info("Found %d files with timestamp substrings in %s", len(files), cfg.Root)

	groups := GroupByInstant(files)
	for _, p := range groups.Dropped {
		log.Debug("Invalid date/time stamp in %s", filepath.Base(p))
	}

	stats.Dropped = len(groups.Dropped)
	stats.Parsed = groups.Files()
	stats.Instants = len(groups.Groups)
	for _, g := range groups.Matches() {
		stats.MatchGroups++
		stats.Matched += len(g.Paths)
	}

	if err := WriteReport(w, groups, ReportOptions{
		Format:      cfg.ReportFormat,
		TimeFormat:  cfg.TimeFormat,
		OnlyMatches: cfg.OnlyMatches,
	}); err != nil {
		return stats, groups, err
	}

	logSummary(log, &stats, len(groups.CrossDirectory()))
	return stats, groups, nil
}

func logSummary(log Logger, stats *RunStats, crossDir int) {
	log.Info("=== Summary ===")
	log.Info("Candidates: %d  Parsed: %d  Invalid: %d  Skipped: %d",
		stats.Candidates, stats.Parsed, stats.Dropped, stats.Skipped)
	if stats.Matched > 0 {
		log.Success("%d files share %d instants (%d across directories)",
			stats.Matched, stats.MatchGroups, crossDir)
	} else {
		log.Info("No files share an instant")
	}
}
