package contracts

import (
	"context"
	"time"

	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"
)

// BusinessHoursCalendar resolves a doctor's working window for a weekday.
// A doctor that does not work that day yields working=false, never an error;
// errors are reserved for missing doctors and storage failures.
type BusinessHoursCalendar interface {
	ScheduleFor(ctx context.Context, doctorID string, weekday time.Weekday) (schedule models.DaySchedule, slotDurationMinutes int, working bool, err error)
}

type ScheduleUsecase interface {
	UpsertWeeklySchedule(ctx context.Context, session *models.Session, request *requests.UpsertWeeklyScheduleRequest) (*responses.WeeklySchedule, error)
	GetWeeklySchedule(ctx context.Context, doctorID string) (*responses.WeeklySchedule, error)
}
