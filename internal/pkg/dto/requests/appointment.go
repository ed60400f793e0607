package requests

import "time"

type CreateAppointmentRequest struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"required,date_ymd"`
	Time     string `json:"time" validate:"required,time_hhmm"`
	Notes    string `json:"notes" validate:"max=500"`

	// Filled in by the usecase, never by the client.
	PatientID   string    `json:"-"`
	ScheduledAt time.Time `json:"-"`
}
