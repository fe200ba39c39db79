package pipeline

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/backmassage/stampmatch/internal/stamp"
)

// Group is a set of files whose filenames embed the same instant.
type Group struct {
	Instant time.Time
	Paths   []string // In input order.
}

// IsMatch reports whether more than one file shares the instant.
func (g Group) IsMatch() bool { return len(g.Paths) > 1 }

// CrossDirectory reports whether the group's files live in more than one
// directory.
func (g Group) CrossDirectory() bool {
	if len(g.Paths) < 2 {
		return false
	}
	first := filepath.Dir(g.Paths[0])
	for _, p := range g.Paths[1:] {
		if filepath.Dir(p) != first {
			return true
		}
	}
	return false
}

// Others returns the group members other than path.
func (g Group) Others(path string) []string {
	out := make([]string, 0, len(g.Paths))
	for _, p := range g.Paths {
		if p != path {
			out = append(out, p)
		}
	}
	return out
}

// Groups is the result of [GroupByInstant], ordered by instant.
type Groups struct {
	Groups  []Group
	Dropped []string // Candidates whose stamp failed calendar validation.
}

// Matches returns only the groups holding more than one file.
func (gs Groups) Matches() []Group {
	var out []Group
	for _, g := range gs.Groups {
		if g.IsMatch() {
			out = append(out, g)
		}
	}
	return out
}

// CrossDirectory returns the groups whose files span several directories.
func (gs Groups) CrossDirectory() []Group {
	var out []Group
	for _, g := range gs.Groups {
		if g.CrossDirectory() {
			out = append(out, g)
		}
	}
	return out
}

// Files returns the number of grouped files.
func (gs Groups) Files() int {
	n := 0
	for _, g := range gs.Groups {
		n += len(g.Paths)
	}
	return n
}

// GroupByInstant extracts the stamp from each path's basename, drops paths
// without a valid stamp, and groups the rest by instant equality.
func GroupByInstant(paths []string) Groups {
	var gs Groups
	index := make(map[time.Time]int)
	for _, p := range paths {
		ts, ok := stamp.FromFilename(filepath.Base(p))
		if !ok {
			gs.Dropped = append(gs.Dropped, p)
			continue
		}
		i, seen := index[ts]
		if !seen {
			i = len(gs.Groups)
			index[ts] = i
			gs.Groups = append(gs.Groups, Group{Instant: ts})
		}
		gs.Groups[i].Paths = append(gs.Groups[i].Paths, p)
	}
	sort.SliceStable(gs.Groups, func(a, b int) bool {
		return gs.Groups[a].Instant.Before(gs.Groups[b].Instant)
	})
	return gs
}
