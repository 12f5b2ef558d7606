package domain

// Stats summarizes recorded activities and the backlog
type Stats struct {
	BreakCount     int
	BreakDiff      int
	CompletedTasks int
	OpenTasks      int
	WorkCount      int
	WorkDiff       int
}

// ComputeStats aggregates activities and tasks.
// Diffs only include finished activities.
func ComputeStats(activities []Activity, tasks []Task) Stats {
	var s Stats
	for _, a := range activities {
		switch a.Kind {
		case ActivityWork:
			s.WorkCount++
			s.WorkDiff += a.Diff()
		case ActivityBreak:
			s.BreakCount++
			s.BreakDiff += a.Diff()
		}
	}
	for _, t := range tasks {
		if t.Completed {
			s.CompletedTasks++
		} else {
			s.OpenTasks++
		}
	}
	return s
}
