package domain

import "errors"

var (
	ErrActivityNotFound       = errors.New("activity not found")
	ErrHandleNotFound         = errors.New("callback handle not found")
	ErrIllegalStateTransition = errors.New("illegal state transition")
	ErrInvalidSettings        = errors.New("invalid settings")
	ErrTaskCompleted          = errors.New("task already completed")
	ErrTaskNotFound           = errors.New("task not found")
	ErrTimerBusy              = errors.New("another timer is active")
	ErrTimerRunning           = errors.New("timer is running")
	ErrTimerStopped           = errors.New("timer is stopped")
)
