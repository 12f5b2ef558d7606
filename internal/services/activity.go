package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ports"
)

// Export formats
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ActivityService reads the activity log and computes statistics
type ActivityService struct {
	activities ports.ActivityRepository
	tasks      ports.TaskReader
}

// NewActivityService creates a new ActivityService
func NewActivityService(activities ports.ActivityRepository, tasks ports.TaskReader) *ActivityService {
	return &ActivityService{activities: activities, tasks: tasks}
}

// List returns activities matching filter, newest first
func (s *ActivityService) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	activities, err := s.activities.ListActivities(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// Stats aggregates the activities matching filter with the whole backlog
func (s *ActivityService) Stats(ctx context.Context, filter domain.ActivityFilter) (domain.Stats, error) {
	activities, err := s.List(ctx, filter)
	if err != nil {
		return domain.Stats{}, err
	}
	tasks, err := s.tasks.ListTasks(ctx, true)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return domain.ComputeStats(activities, tasks), nil
}

// ActivityRecord is the exported form of an activity
type ActivityRecord struct {
	Date             time.Time `json:"date" yaml:"date" toml:"date"`
	Duration         *int      `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty"`
	ExpectedDuration int       `json:"expected_duration" yaml:"expected_duration" toml:"expected_duration"`
	ID               uint      `json:"id" yaml:"id" toml:"id"`
	Kind             string    `json:"kind" yaml:"kind" toml:"kind"`
	Task             string    `json:"task,omitempty" yaml:"task,omitempty" toml:"task,omitempty"`
	TaskID           *uint     `json:"task_id,omitempty" yaml:"task_id,omitempty" toml:"task_id,omitempty"`
}

// ActivityExport wraps the records so every format has a top-level table
type ActivityExport struct {
	Activities []ActivityRecord `json:"activities" yaml:"activities" toml:"activities"`
	ExportedAt time.Time        `json:"exported_at" yaml:"exported_at" toml:"exported_at"`
}

// Records returns the activities matching filter with their task names
func (s *ActivityService) Records(ctx context.Context, filter domain.ActivityFilter) ([]ActivityRecord, error) {
	activities, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string)
	tasks, err := s.tasks.ListTasks(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	for _, t := range tasks {
		names[t.ID] = t.Name
	}

	records := make([]ActivityRecord, 0, len(activities))
	for _, a := range activities {
		rec := ActivityRecord{
			Date:             a.Date.UTC().Truncate(time.Second),
			Duration:         a.Duration,
			ExpectedDuration: a.ExpectedDuration,
			ID:               a.ID,
			Kind:             string(a.Kind),
			TaskID:           a.TaskID,
		}
		if a.TaskID != nil {
			rec.Task = names[*a.TaskID]
		}
		records = append(records, rec)
	}
	return records, nil
}

// Export writes the activities matching filter to w in the given format
func (s *ActivityService) Export(ctx context.Context, w io.Writer, format string, filter domain.ActivityFilter) error {
	records, err := s.Records(ctx, filter)
	if err != nil {
		return err
	}

	export := ActivityExport{
		Activities: records,
		ExportedAt: time.Now().UTC().Truncate(time.Second),
	}

	logging.Logger.Info("Exporting activities", "format", format, "count", len(export.Activities))

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(export)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(export)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(export)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode activities as %s: %w", format, err)
	}
	return nil
}
