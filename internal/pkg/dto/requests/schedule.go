package requests

type DayScheduleRequest struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"gte=0,lte=6"`
	IsWorking bool   `json:"isWorking"`
	StartTime string `json:"startTime" validate:"required_if=IsWorking true,omitempty,time_hhmm"`
	EndTime   string `json:"endTime" validate:"required_if=IsWorking true,omitempty,time_hhmm"`
}

type UpsertWeeklyScheduleRequest struct {
	Days                []DayScheduleRequest `json:"days" validate:"required,len=7,dive"`
	SlotDurationMinutes int                  `json:"slotDurationMinutes" validate:"omitempty,slot_duration"`
}
