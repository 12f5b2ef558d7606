package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/breakwise/breakwise/internal/logging"
)

// ErrAlreadyRunning is returned when another process holds the lock
var ErrAlreadyRunning = errors.New("another breakwise tracker is already running")

// FileLock is an exclusive advisory lock on a file. The holder's pid is
// written to the file for diagnostics.
type FileLock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path without blocking
func Acquire(path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLock(file); err != nil {
		file.Close()
		if errors.Is(err, errWouldBlock) {
			if pid := readPID(path); pid != 0 {
				return nil, fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
			}
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}

	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	logging.Logger.Debug("Lock acquired", "path", path)
	return &FileLock{file: file, path: path}, nil
}

// Path returns the lock file path
func (l *FileLock) Path() string {
	return l.path
}

// Release unlocks and closes the file. It is safe to call more than once.
func (l *FileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}

	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	l.file = nil

	logging.Logger.Debug("Lock released", "path", l.path)
	return errors.Join(unlockErr, closeErr)
}

func readPID(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
