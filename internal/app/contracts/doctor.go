package contracts

import (
	"context"

	"hospicare-service/internal/app/models"
)

type DoctorRepository interface {
	// FindByID returns nil without error when no doctor exists.
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	UpdateAvailability(ctx context.Context, doctorID string, availability models.WeeklyAvailability) error
}
