package ports

import (
	"context"

	"github.com/breakwise/breakwise/internal/domain"
)

// Notifier shows a desktop notification when a countdown expires
type Notifier interface {
	Notify(ctx context.Context, kind domain.TimerID) error
}
