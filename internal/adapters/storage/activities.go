package storage

import (
	"context"
	"fmt"

	"github.com/breakwise/breakwise/internal/domain"
)

// AddActivity implements ActivityRepository.AddActivity and assigns the new id
func (r *SQLiteRepository) AddActivity(ctx context.Context, activity *domain.Activity) error {
	model := domainToActivityModel(*activity)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Omit("Task").Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	activity.ID = model.ID
	return nil
}

// UpdateActivity implements ActivityRepository.UpdateActivity
func (r *SQLiteRepository) UpdateActivity(ctx context.Context, activity *domain.Activity) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&ActivityModel{ID: activity.ID}).
			Select("duration", "expected_duration", "task_id").
			Updates(domainToActivityModel(*activity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("activity %d: %w", activity.ID, domain.ErrActivityNotFound)
		}
		return nil
	}, 3)
}

// ListActivities implements ActivityRepository.ListActivities, newest first
func (r *SQLiteRepository) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	var models []ActivityModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("date DESC").Order("id DESC")
		if filter.Kind != "" {
			query = query.Where("kind = ?", string(filter.Kind))
		}
		if !filter.Since.IsZero() {
			query = query.Where("date >= ?", filter.Since.UTC())
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, len(models))
	for i, m := range models {
		activities[i] = activityModelToDomain(m)
	}
	return activities, nil
}
