package domain

import "time"

// ActivityKind distinguishes work sessions from breaks
type ActivityKind string

const (
	ActivityBreak ActivityKind = "break"
	ActivityWork  ActivityKind = "work"
)

// Activity is one recorded WORK or BREAK session.
// Duration stays nil while the session is still running.
type Activity struct {
	Date             time.Time
	Duration         *int
	ExpectedDuration int
	ID               uint
	Kind             ActivityKind
	TaskID           *uint
}

// Finished reports whether the measured duration was recorded
func (a Activity) Finished() bool {
	return a.Duration != nil
}

// Diff returns the measured minus the expected duration in seconds
func (a Activity) Diff() int {
	if a.Duration == nil {
		return 0
	}
	return *a.Duration - a.ExpectedDuration
}

// ActivityFilter narrows activity listings
type ActivityFilter struct {
	Kind  ActivityKind
	Limit int
	Since time.Time
}
