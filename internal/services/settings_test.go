package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/ports/mocks"
)

func TestSettingsService_DefaultsBeforeLoad(t *testing.T) {
	s := NewSettingsService(mocks.NewMockRepository(t))
	assert.Equal(t, domain.DefaultSettings(), s.Current())
}

func TestSettingsService_Load(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	stored := domain.Settings{WorkTime: 50, BreakTime: 10, PlaySound: true}
	repo.On("LoadSettings", mock.Anything).Return(stored, nil).Once()

	s := NewSettingsService(repo)
	got, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	assert.Equal(t, stored, s.Current())
}

func TestSettingsService_UpdatePublishesSnapshot(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	updated := domain.Settings{WorkTime: 30, BreakTime: 5, ShowNotification: true}
	repo.On("SaveSettings", mock.Anything, updated).Return(nil).Once()

	s := NewSettingsService(repo)
	var received []domain.Settings
	s.Subscribe(func(got domain.Settings) error {
		received = append(received, got)
		return nil
	})

	require.NoError(t, s.Update(context.Background(), updated))

	assert.Equal(t, []domain.Settings{updated}, received)
	assert.Equal(t, updated, s.Current())
}

func TestSettingsService_UpdateRejectsInvalid(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	s := NewSettingsService(repo)

	err := s.Update(context.Background(), domain.Settings{WorkTime: 0, BreakTime: 5})

	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
	repo.AssertNotCalled(t, "SaveSettings", mock.Anything, mock.Anything)
}

func TestSettingsService_SaveErrorSkipsListeners(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	updated := domain.Settings{WorkTime: 30, BreakTime: 5}
	repo.On("SaveSettings", mock.Anything, updated).Return(errors.New("readonly")).Once()

	s := NewSettingsService(repo)
	called := false
	s.Subscribe(func(domain.Settings) error {
		called = true
		return nil
	})

	require.Error(t, s.Update(context.Background(), updated))
	assert.False(t, called)
	assert.Equal(t, domain.DefaultSettings(), s.Current())
}

func TestSettingsService_Unsubscribe(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	updated := domain.Settings{WorkTime: 30, BreakTime: 5}
	repo.On("SaveSettings", mock.Anything, updated).Return(nil).Once()

	s := NewSettingsService(repo)
	called := false
	h := s.Subscribe(func(domain.Settings) error {
		called = true
		return nil
	})
	require.NoError(t, s.Unsubscribe(h))

	require.NoError(t, s.Update(context.Background(), updated))
	assert.False(t, called)
	assert.ErrorIs(t, s.Unsubscribe(h), domain.ErrHandleNotFound)
}
