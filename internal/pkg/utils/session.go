package utils

import (
	"context"

	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"
)

// GetSession returns the authenticated session placed in the context by the
// authentication middleware.
func GetSession(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrMissingSession(nil)
	}
	return session, nil
}
