package contracts

import (
	"context"
	"time"

	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointmentRequest) (*responses.Appointment, error)
	FindAll(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
	CompleteAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	// Insert persists a new appointment. It returns ErrSlotTaken when the
	// storage-level uniqueness guard on (doctorId, slotKey) rejects it.
	Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	// FindActiveInWindow returns non-cancelled appointments for the doctor
	// with scheduledAt inside the open interval (from, to).
	FindActiveInWindow(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	// UpdateStatusFrom transitions status only when the stored status still
	// equals the expected one; it reports whether a document matched.
	UpdateStatusFrom(ctx context.Context, appointmentID string, expected, next models.AppointmentStatus) (bool, error)
}

type ConflictChecker interface {
	HasConflict(ctx context.Context, doctorID string, proposedTime time.Time, bufferMinutes int) (bool, error)
}
