package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakwise/breakwise/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "breakwise.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestTaskLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	task := &domain.Task{Name: "write report", Priority: 2, TotalWorkload: 2}
	require.NoError(t, repo.AddTask(ctx, task))
	assert.NotZero(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())

	got, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "write report", got.Name)
	assert.Equal(t, 2, got.Priority)

	got.AddWorkload()
	got.AddWorkload()
	require.NoError(t, repo.UpdateTask(ctx, got))

	got, err = repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CompletedWorkload)
	assert.False(t, got.Completed)

	got.Completed = true
	require.NoError(t, repo.UpdateTask(ctx, got))
	got, err = repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	require.NoError(t, repo.DeleteTask(ctx, task.ID))
	_, err = repo.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.GetTask(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	err = repo.UpdateTask(ctx, &domain.Task{ID: 42, Name: "ghost"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	err = repo.DeleteTask(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestListTasks(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	low := &domain.Task{Name: "low", Priority: 1}
	high := &domain.Task{Name: "high", Priority: 5}
	done := &domain.Task{Name: "done", Priority: 9, Completed: true}
	for _, task := range []*domain.Task{low, high, done} {
		require.NoError(t, repo.AddTask(ctx, task))
	}

	open, err := repo.ListTasks(ctx, false)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "high", open[0].Name)
	assert.Equal(t, "low", open[1].Name)

	all, err := repo.ListTasks(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "done", all[0].Name)
}

func TestActivityLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	task := &domain.Task{Name: "focus", TotalWorkload: 3}
	require.NoError(t, repo.AddTask(ctx, task))

	activity := &domain.Activity{
		Date:             time.Now(),
		ExpectedDuration: 1200,
		Kind:             domain.ActivityWork,
		TaskID:           &task.ID,
	}
	require.NoError(t, repo.AddActivity(ctx, activity))
	assert.NotZero(t, activity.ID)

	listed, err := repo.ListActivities(ctx, domain.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].Finished())
	require.NotNil(t, listed[0].TaskID)
	assert.Equal(t, task.ID, *listed[0].TaskID)

	duration := 1260
	activity.Duration = &duration
	require.NoError(t, repo.UpdateActivity(ctx, activity))

	listed, err = repo.ListActivities(ctx, domain.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.True(t, listed[0].Finished())
	assert.Equal(t, 60, listed[0].Diff())
}

func TestUpdateActivityNotFound(t *testing.T) {
	repo := newTestRepository(t)
	duration := 10

	err := repo.UpdateActivity(context.Background(), &domain.Activity{ID: 7, Kind: domain.ActivityBreak, Duration: &duration})
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestDeletingTaskKeepsActivities(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	task := &domain.Task{Name: "temporary"}
	require.NoError(t, repo.AddTask(ctx, task))
	require.NoError(t, repo.AddActivity(ctx, &domain.Activity{
		Date:             time.Now(),
		ExpectedDuration: 60,
		Kind:             domain.ActivityWork,
		TaskID:           &task.ID,
	}))

	require.NoError(t, repo.DeleteTask(ctx, task.ID))

	listed, err := repo.ListActivities(ctx, domain.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Nil(t, listed[0].TaskID)
}

func TestListActivitiesFilter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []domain.Activity{
		{Date: now.Add(-48 * time.Hour), ExpectedDuration: 1200, Kind: domain.ActivityWork},
		{Date: now.Add(-2 * time.Hour), ExpectedDuration: 300, Kind: domain.ActivityBreak},
		{Date: now.Add(-1 * time.Hour), ExpectedDuration: 1200, Kind: domain.ActivityWork},
	}
	for i := range seed {
		require.NoError(t, repo.AddActivity(ctx, &seed[i]))
	}

	tests := []struct {
		name   string
		filter domain.ActivityFilter
		want   []uint
	}{
		{"all newest first", domain.ActivityFilter{}, []uint{seed[2].ID, seed[1].ID, seed[0].ID}},
		{"work only", domain.ActivityFilter{Kind: domain.ActivityWork}, []uint{seed[2].ID, seed[0].ID}},
		{"since", domain.ActivityFilter{Since: now.Add(-24 * time.Hour)}, []uint{seed[2].ID, seed[1].ID}},
		{"limit", domain.ActivityFilter{Limit: 1}, []uint{seed[2].ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listed, err := repo.ListActivities(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]uint, len(listed))
			for i, a := range listed {
				ids[i] = a.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSettingsDefaultsAndSave(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	loaded, err := repo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), loaded)

	updated := domain.Settings{WorkTime: 50, BreakTime: 10, PlaySound: true, ShowNotification: false}
	require.NoError(t, repo.SaveSettings(ctx, updated))

	loaded, err = repo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)

	updated.WorkTime = 25
	require.NoError(t, repo.SaveSettings(ctx, updated))

	loaded, err = repo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, loaded.WorkTime)
	assert.False(t, loaded.ShowNotification)
}

func TestSettingsPersistAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "breakwise.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.SaveSettings(ctx, domain.Settings{WorkTime: 30, BreakTime: 7, ShowNotification: true}))
	require.NoError(t, repo.Close())

	repo, err = NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	loaded, err := repo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.WorkTime)
	assert.Equal(t, 7, loaded.BreakTime)
}
