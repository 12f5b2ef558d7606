package services

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/ports/mocks"
)

func activityFixtures() ([]domain.Activity, []domain.Task) {
	taskID := uint(2)
	d1, d2 := 1300, 280
	activities := []domain.Activity{
		{ID: 1, Kind: domain.ActivityWork, Date: fixedNow, ExpectedDuration: 1200, Duration: &d1, TaskID: &taskID},
		{ID: 2, Kind: domain.ActivityBreak, Date: fixedNow.Add(time.Hour), ExpectedDuration: 300, Duration: &d2},
		{ID: 3, Kind: domain.ActivityWork, Date: fixedNow.Add(2 * time.Hour), ExpectedDuration: 1200},
	}
	tasks := []domain.Task{
		{ID: 2, Name: "report", Completed: true},
		{ID: 3, Name: "email"},
	}
	return activities, tasks
}

func TestActivityService_Stats(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	activities, tasks := activityFixtures()
	repo.On("ListActivities", mock.Anything, domain.ActivityFilter{}).Return(activities, nil).Once()
	repo.On("ListTasks", mock.Anything, true).Return(tasks, nil).Once()

	stats, err := NewActivityService(repo, repo).Stats(context.Background(), domain.ActivityFilter{})

	require.NoError(t, err)
	assert.Equal(t, domain.Stats{
		BreakCount:     1,
		BreakDiff:      -20,
		CompletedTasks: 1,
		OpenTasks:      1,
		WorkCount:      2,
		WorkDiff:       100,
	}, stats)
}

func TestActivityService_Export(t *testing.T) {
	tests := []struct {
		format string
		decode func([]byte, any) error
	}{
		{FormatJSON, json.Unmarshal},
		{FormatYAML, yaml.Unmarshal},
		{FormatTOML, toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			repo := mocks.NewMockRepository(t)
			activities, tasks := activityFixtures()
			filter := domain.ActivityFilter{Kind: domain.ActivityWork}
			repo.On("ListActivities", mock.Anything, filter).Return(activities, nil).Once()
			repo.On("ListTasks", mock.Anything, true).Return(tasks, nil).Once()

			var buf bytes.Buffer
			err := NewActivityService(repo, repo).Export(context.Background(), &buf, tt.format, filter)
			require.NoError(t, err)

			var decoded ActivityExport
			require.NoError(t, tt.decode(buf.Bytes(), &decoded))
			require.Len(t, decoded.Activities, 3)
			assert.Equal(t, "report", decoded.Activities[0].Task)
			assert.Equal(t, 1300, *decoded.Activities[0].Duration)
			assert.Equal(t, "break", decoded.Activities[1].Kind)
			assert.Nil(t, decoded.Activities[2].Duration)
			assert.True(t, decoded.Activities[0].Date.Equal(fixedNow))
		})
	}
}

func TestActivityService_ExportUnknownFormat(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.On("ListActivities", mock.Anything, mock.Anything).Return([]domain.Activity{}, nil).Once()
	repo.On("ListTasks", mock.Anything, true).Return([]domain.Task{}, nil).Once()

	err := NewActivityService(repo, repo).Export(context.Background(), &bytes.Buffer{}, "csv", domain.ActivityFilter{})

	assert.Error(t, err)
}
