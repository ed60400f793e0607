package utils

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUnavailable reports whether a mongo error means the storage layer
// is unreachable or too slow, as opposed to a query-level failure.
func MongoUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return mongo.IsTimeout(err) || mongo.IsNetworkError(err)
}
