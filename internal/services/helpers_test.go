package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/ports"
	"github.com/breakwise/breakwise/internal/ports/mocks"
	"github.com/breakwise/breakwise/internal/session"
)

type controllerHarness struct {
	controller *TimerController
	machine    *session.Machine
	notifier   *mocks.MockNotifier
	repo       *mocks.MockRepository
	settings   *SettingsService
	sound      *mocks.MockSoundPlayer
	sources    []*mocks.ManualTickSource
}

func newControllerHarness(t *testing.T, s domain.Settings) *controllerHarness {
	t.Helper()

	h := &controllerHarness{
		notifier: mocks.NewMockNotifier(t),
		repo:     mocks.NewMockRepository(t),
		sound:    mocks.NewMockSoundPlayer(t),
	}
	h.repo.On("LoadSettings", mock.Anything).Return(s, nil).Maybe()

	h.settings = NewSettingsService(h.repo)
	_, err := h.settings.Load(context.Background())
	require.NoError(t, err)

	h.machine = session.NewMachine(domain.DefaultWorkTime, domain.DefaultBreakTime)
	factory := func() ports.TickSource {
		src := mocks.NewManualTickSource()
		h.sources = append(h.sources, src)
		return src
	}

	h.controller, err = NewTimerController(h.machine, h.settings, h.notifier, h.sound, factory)
	require.NoError(t, err)
	require.Len(t, h.sources, 2)

	return h
}

// source returns the tick source of a timer; timers are created work first
func (h *controllerHarness) source(id domain.TimerID) *mocks.ManualTickSource {
	if id == domain.TimerBreak {
		return h.sources[1]
	}
	return h.sources[0]
}

func quietSettings(work, brk int) domain.Settings {
	return domain.Settings{WorkTime: work, BreakTime: brk}
}
