package mocks

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockSoundPlayer is a testify mock of ports.SoundPlayer
type MockSoundPlayer struct {
	mock.Mock
}

// NewMockSoundPlayer creates a mock that asserts its expectations on cleanup
func NewMockSoundPlayer(t *testing.T) *MockSoundPlayer {
	m := &MockSoundPlayer{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSoundPlayer) PlaySound() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSoundPlayer) PlaySoundForEvent(eventType string) error {
	args := m.Called(eventType)
	return args.Error(0)
}
