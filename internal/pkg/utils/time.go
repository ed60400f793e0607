package utils

import (
	"fmt"
	"time"

	"hospicare-service/internal/pkg/constvars"
)

// ParseDate interprets a YYYY-MM-DD string in the process timezone.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, date, time.Local)
}

// CombineDateTime builds an absolute time from YYYY-MM-DD and HH:MM parts.
func CombineDateTime(date, clock string) (time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	minute, err := ClockToMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(minute) * time.Minute), nil
}

// ClockToMinutes converts HH:MM into minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	parsed, err := time.Parse(constvars.TimeLayout, clock)
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// MinutesToClock converts minutes since midnight into HH:MM.
func MinutesToClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
