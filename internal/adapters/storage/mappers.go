package storage

import (
	"github.com/breakwise/breakwise/internal/domain"
)

// taskModelToDomain converts a TaskModel (GORM) to domain.Task
func taskModelToDomain(m TaskModel) domain.Task {
	return domain.Task{
		Completed:         m.Completed,
		CompletedWorkload: m.CompletedWorkload,
		CreatedAt:         m.CreatedAt,
		ID:                m.ID,
		Name:              m.Name,
		Priority:          m.Priority,
		TotalWorkload:     m.TotalWorkload,
	}
}

// domainToTaskModel converts a domain.Task to TaskModel (GORM)
func domainToTaskModel(t domain.Task) TaskModel {
	return TaskModel{
		Completed:         t.Completed,
		CompletedWorkload: t.CompletedWorkload,
		CreatedAt:         t.CreatedAt,
		ID:                t.ID,
		Name:              t.Name,
		Priority:          t.Priority,
		TotalWorkload:     t.TotalWorkload,
	}
}

// activityModelToDomain converts an ActivityModel (GORM) to domain.Activity
func activityModelToDomain(m ActivityModel) domain.Activity {
	return domain.Activity{
		Date:             m.Date,
		Duration:         m.Duration,
		ExpectedDuration: m.ExpectedDuration,
		ID:               m.ID,
		Kind:             domain.ActivityKind(m.Kind),
		TaskID:           m.TaskID,
	}
}

// domainToActivityModel converts a domain.Activity to ActivityModel (GORM)
func domainToActivityModel(a domain.Activity) ActivityModel {
	return ActivityModel{
		Date:             a.Date.UTC(),
		Duration:         a.Duration,
		ExpectedDuration: a.ExpectedDuration,
		ID:               a.ID,
		Kind:             string(a.Kind),
		TaskID:           a.TaskID,
	}
}

// settingsModelToDomain converts a SettingsModel (GORM) to domain.Settings
func settingsModelToDomain(m SettingsModel) domain.Settings {
	return domain.Settings{
		BreakTime:        m.BreakTime,
		PlaySound:        m.PlaySound,
		ShowNotification: m.ShowNotification,
		WorkTime:         m.WorkTime,
	}
}

// domainToSettingsModel converts domain.Settings to the settings row
func domainToSettingsModel(s domain.Settings) SettingsModel {
	return SettingsModel{
		BreakTime:        s.BreakTime,
		ID:               settingsRowID,
		PlaySound:        s.PlaySound,
		ShowNotification: s.ShowNotification,
		WorkTime:         s.WorkTime,
	}
}
