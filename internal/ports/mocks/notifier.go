package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/breakwise/breakwise/internal/domain"
)

// MockNotifier is a testify mock of ports.Notifier
type MockNotifier struct {
	mock.Mock
}

// NewMockNotifier creates a mock that asserts its expectations on cleanup
func NewMockNotifier(t *testing.T) *MockNotifier {
	m := &MockNotifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockNotifier) Notify(ctx context.Context, kind domain.TimerID) error {
	args := m.Called(ctx, kind)
	return args.Error(0)
}
