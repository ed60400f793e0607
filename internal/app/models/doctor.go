package models

import (
	"time"

	"hospicare-service/internal/pkg/constvars"
)

// DaySchedule is one row of a doctor's weekly availability table.
// StartMinute and EndMinute are minutes since midnight; they are only
// meaningful when IsWorking is true.
type DaySchedule struct {
	DayOfWeek   int  `json:"dayOfWeek" bson:"dayOfWeek"`
	IsWorking   bool `json:"isWorking" bson:"isWorking"`
	StartMinute int  `json:"startMinute" bson:"startMinute"`
	EndMinute   int  `json:"endMinute" bson:"endMinute"`
}

// WeeklyAvailability holds exactly one DaySchedule per day-of-week
// (0=Sunday..6=Saturday) plus the doctor-level slot duration.
type WeeklyAvailability struct {
	Days                [7]DaySchedule `json:"days" bson:"days"`
	SlotDurationMinutes int            `json:"slotDurationMinutes" bson:"slotDurationMinutes"`
}

// NewWeeklyAvailability returns a fully-off week with the default slot
// duration, so a doctor with no published schedule never books anything.
func NewWeeklyAvailability() WeeklyAvailability {
	availability := WeeklyAvailability{
		SlotDurationMinutes: constvars.SlotDurationMinutesDefault,
	}
	for day := range availability.Days {
		availability.Days[day] = DaySchedule{DayOfWeek: day}
	}
	return availability
}

// ScheduleFor looks up the DaySchedule for a weekday. The second return
// value is false when the doctor does not work that day; a missing or
// malformed entry is treated as not working, never as an error.
func (a WeeklyAvailability) ScheduleFor(weekday time.Weekday) (DaySchedule, bool) {
	day := int(weekday)
	if day < 0 || day >= len(a.Days) {
		return DaySchedule{DayOfWeek: day}, false
	}
	schedule := a.Days[day]
	if !schedule.IsWorking || schedule.StartMinute >= schedule.EndMinute {
		return schedule, false
	}
	return schedule, true
}

type Doctor struct {
	ID           string             `json:"id" bson:"_id,omitempty"`
	FullName     string             `json:"fullName" bson:"fullName"`
	Email        string             `json:"email" bson:"email"`
	Role         string             `json:"role" bson:"role"`
	Specialty    string             `json:"specialty" bson:"specialty"`
	Approved     bool               `json:"approved" bson:"approved"`
	Availability WeeklyAvailability `json:"availability" bson:"availability"`
	TimeModel    `bson:",inline"`
}

// Bookable reports whether appointments may be scheduled with this doctor.
func (d *Doctor) Bookable() bool {
	return d != nil && d.Role == constvars.RoleDoctor && d.Approved
}
