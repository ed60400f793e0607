package responses

type DaySchedule struct {
	DayOfWeek int    `json:"day_of_week"`
	IsWorking bool   `json:"is_working"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type WeeklySchedule struct {
	DoctorID            string        `json:"doctor_id"`
	Days                []DaySchedule `json:"days"`
	SlotDurationMinutes int           `json:"slot_duration_minutes"`
}
