package contracts

import "context"

// NotificationSink publishes user-facing notifications. Delivery is
// best-effort: booking flows log and swallow its errors.
type NotificationSink interface {
	Notify(ctx context.Context, userID, event, message string) error
}
