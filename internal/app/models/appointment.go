package models

import (
	"time"

	"hospicare-service/internal/pkg/constvars"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// CanTransitionTo implements the appointment lifecycle: Scheduled is the
// only non-terminal state, Completed and Cancelled are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s != AppointmentStatusScheduled {
		return false
	}
	return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
}

// Active reports whether the appointment still occupies its slot.
func (s AppointmentStatus) Active() bool {
	return s != AppointmentStatusCancelled
}

type Appointment struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	DoctorID    string            `json:"doctorId" bson:"doctorId"`
	PatientID   string            `json:"patientId" bson:"patientId"`
	ScheduledAt time.Time         `json:"scheduledAt" bson:"scheduledAt"`
	SlotKey     string            `json:"-" bson:"slotKey"`
	Status      AppointmentStatus `json:"status" bson:"status"`
	Notes       string            `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel   `bson:",inline"`
}

// NewAppointment builds a Scheduled appointment with its slot bucket key
// derived from the scheduled time. The key feeds the partial unique index
// that rejects two concurrent bookings of the same slot.
func NewAppointment(doctorID, patientID string, scheduledAt time.Time, notes string) *Appointment {
	appointment := &Appointment{
		DoctorID:    doctorID,
		PatientID:   patientID,
		ScheduledAt: scheduledAt,
		SlotKey:     SlotKeyFor(scheduledAt),
		Status:      AppointmentStatusScheduled,
		Notes:       notes,
	}
	appointment.SetCreatedAtUpdatedAt()
	return appointment
}

// SlotKeyFor truncates a scheduled time to minute precision in UTC.
func SlotKeyFor(scheduledAt time.Time) string {
	return scheduledAt.UTC().Truncate(time.Minute).Format(constvars.SlotKeyLayout)
}
