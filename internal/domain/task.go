package domain

import (
	"fmt"
	"strings"
	"time"
)

// Task is a backlog item that work sessions can be bound to
type Task struct {
	Completed         bool
	CompletedWorkload int
	CreatedAt         time.Time
	ID                uint
	Name              string
	Priority          int
	TotalWorkload     int
}

// MaxTaskNameLength matches the column width of the task table
const MaxTaskNameLength = 50

// Label renders the task the way the backlog lists it
func (t Task) Label() string {
	return fmt.Sprintf("%s [%d/%d]", t.Name, t.CompletedWorkload, t.TotalWorkload)
}

// AddWorkload records one finished work session on the task
func (t *Task) AddWorkload() {
	t.CompletedWorkload++
}

// Validate checks the user-editable fields
func (t Task) Validate() error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return fmt.Errorf("task name is required")
	}
	if len(name) > MaxTaskNameLength {
		return fmt.Errorf("task name exceeds %d characters", MaxTaskNameLength)
	}
	if t.TotalWorkload < 0 || t.CompletedWorkload < 0 {
		return fmt.Errorf("workload cannot be negative")
	}
	return nil
}
