package models

import "hospicare-service/internal/pkg/constvars"

// Session is the authenticated principal resolved from the bearer token.
// Token issuance lives in a separate auth service; this service only reads
// the session that service stored in Redis.
type Session struct {
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	DoctorID  string `json:"doctorId,omitempty"`
	PatientID string `json:"patientId,omitempty"`
}

func (s *Session) IsDoctor() bool {
	return s != nil && s.Role == constvars.RoleDoctor && s.DoctorID != ""
}

func (s *Session) IsPatient() bool {
	return s != nil && s.Role == constvars.RolePatient && s.PatientID != ""
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == constvars.RoleAdmin
}
