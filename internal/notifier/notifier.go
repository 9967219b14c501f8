package notifier

import (
	"context"
)

// Notifier sends a notification message.
type Notifier interface {
	Send(ctx context.Context, content string) error
}
