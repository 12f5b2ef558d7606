package storage

import "time"

// TaskModel is the GORM model for the backlog
type TaskModel struct {
	Completed         bool `gorm:"not null;default:false;index:idx_task_completed"`
	CompletedWorkload int  `gorm:"not null;default:0"`
	CreatedAt         time.Time
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:50;not null"`
	Priority          int    `gorm:"not null;default:0"`
	TotalWorkload     int    `gorm:"not null;default:0"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string { return "tasks" }

// ActivityModel is the GORM model for work and break sessions
type ActivityModel struct {
	CreatedAt        time.Time
	Date             time.Time `gorm:"not null;index:idx_activity_date"`
	Duration         *int      `gorm:"default:null"`
	ExpectedDuration int       `gorm:"not null"`
	ID               uint      `gorm:"primaryKey"`
	Kind             string    `gorm:"not null;index:idx_activity_kind;check:kind IN ('work','break')"`
	Task             *TaskModel `gorm:"foreignKey:TaskID;constraint:OnDelete:SET NULL"`
	TaskID           *uint      `gorm:"index:idx_activity_task;default:null"`
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (ActivityModel) TableName() string { return "activities" }

// SettingsModel is the GORM model for the single settings row.
// Columns carry no defaults so false and zero values are written as given.
type SettingsModel struct {
	BreakTime        int  `gorm:"not null"`
	ID               uint `gorm:"primaryKey"`
	PlaySound        bool `gorm:"not null"`
	ShowNotification bool `gorm:"not null"`
	UpdatedAt        time.Time
	WorkTime         int `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SettingsModel) TableName() string { return "settings" }

// settingsRowID is the primary key of the only settings row
const settingsRowID = 1
