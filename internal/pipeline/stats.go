package pipeline

// RunStats tracks aggregate counters across a scan.
type RunStats struct {
	Candidates  int // Files whose name has a stamp shape.
	Parsed      int // Candidates with a valid stamp.
	Dropped     int // Candidates whose stamp is not a real date/time.
	Skipped     int // Unreadable entries skipped during the walk.
	Instants    int // Distinct instants.
	MatchGroups int // Instants shared by more than one file.
	Matched     int // Files sharing their instant with at least one other file.
}

// Unmatched returns the number of parsed files with no partner.
func (s *RunStats) Unmatched() int {
	return s.Parsed - s.Matched
}
