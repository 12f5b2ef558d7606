package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	errorPrefix    = "Error: "
	maxErrorLines  = 2
	minErrorWidth  = 10
	truncationMark = "..."
)

// clearErrorMsg clears the error with the matching sequence number
type clearErrorMsg struct {
	seq int
}

// ErrorManager holds the error shown in the footer and clears it after a delay
type ErrorManager struct {
	delay time.Duration
	err   error
	seq   int
}

// NewErrorManager creates an ErrorManager; a zero delay keeps errors until replaced
func NewErrorManager(delay time.Duration) *ErrorManager {
	return &ErrorManager{delay: delay}
}

// SetError replaces the current error and returns the command that clears it
func (e *ErrorManager) SetError(err error) tea.Cmd {
	e.err = err
	e.seq++
	if e.delay <= 0 || err == nil {
		return nil
	}

	seq := e.seq
	return tea.Tick(e.delay, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}

// HandleClear clears the error if msg belongs to the current one
func (e *ErrorManager) HandleClear(msg clearErrorMsg) {
	if msg.seq == e.seq {
		e.err = nil
	}
}

// HasError reports whether an error is displayed
func (e *ErrorManager) HasError() bool { return e.err != nil }

// GetError returns the displayed error
func (e *ErrorManager) GetError() error { return e.err }

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines of
// maxWidth runes, the first line starting with "Error: ". Longer messages end
// with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minErrorWidth)
	limit := max(width-utf8.RuneCountInString(errorPrefix), minErrorWidth)

	var lines []string
	var line strings.Builder
	truncated := false

	for i, word := range words {
		n := utf8.RuneCountInString(line.String())
		if n > 0 && n+1+utf8.RuneCountInString(word) > limit {
			lines = append(lines, line.String())
			line.Reset()
			limit = width
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				break
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[maxErrorLines-1])
		keep := width - utf8.RuneCountInString(truncationMark)
		if len(last) > keep && keep > 0 {
			last = last[:keep]
		}
		lines[maxErrorLines-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
