package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/breakwise/breakwise/internal/domain"
)

// LoadSettings implements SettingsRepository.LoadSettings.
// A database without a settings row yields the defaults.
func (r *SQLiteRepository) LoadSettings(ctx context.Context) (domain.Settings, error) {
	var model SettingsModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).First(&model, settingsRowID).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settingsModelToDomain(model), nil
}

// SaveSettings implements SettingsRepository.SaveSettings
func (r *SQLiteRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	model := domainToSettingsModel(settings)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"work_time", "break_time", "play_sound", "show_notification", "updated_at"}),
		}).Create(&model).Error
	}, 3)
}
