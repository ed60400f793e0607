package appointments

import (
	"context"
	"time"

	"hospicare-service/internal/app/contracts"
)

type conflictChecker struct {
	appointmentRepository contracts.AppointmentRepository
}

func NewConflictChecker(appointmentRepository contracts.AppointmentRepository) contracts.ConflictChecker {
	return &conflictChecker{appointmentRepository: appointmentRepository}
}

// HasConflict reports whether any non-cancelled appointment for the doctor
// lies strictly closer than the buffer to the proposed time. Two bookings
// exactly one buffer apart do not conflict.
func (c *conflictChecker) HasConflict(ctx context.Context, doctorID string, proposedTime time.Time, bufferMinutes int) (bool, error) {
	buffer := time.Duration(bufferMinutes) * time.Minute
	existing, err := c.appointmentRepository.FindActiveInWindow(ctx, doctorID, proposedTime.Add(-buffer), proposedTime.Add(buffer))
	if err != nil {
		return false, err
	}
	return len(existing) > 0, nil
}
