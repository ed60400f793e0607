package slots

import (
	"context"
	"time"

	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/responses"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type slotUsecase struct {
	doctorRepository      contracts.DoctorRepository
	appointmentRepository contracts.AppointmentRepository
	calendar              contracts.BusinessHoursCalendar
	log                   *zap.Logger
}

func NewSlotUsecase(
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	calendar contracts.BusinessHoursCalendar,
	logger *zap.Logger,
) contracts.SlotUsecase {
	return &slotUsecase{
		doctorRepository:      doctorRepository,
		appointmentRepository: appointmentRepository,
		calendar:              calendar,
		log:                   logger,
	}
}

// GenerateSlots enumerates the doctor's slots for one date, in ascending
// order, starting at the day's opening time and stepping by the doctor's
// slot duration. A slot that would run past closing time is never emitted.
// Days off yield an empty list, not an error.
func (u *slotUsecase) GenerateSlots(ctx context.Context, doctorID, date string) ([]responses.Slot, error) {
	requestID := utils.GetRequestID(ctx)
	u.log.Info("SlotUsecase.GenerateSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date),
	)

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	doctor, err := u.doctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	// For read-only listings an unapproved doctor is indistinguishable
	// from a missing one.
	if !doctor.Bookable() {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	schedule, slotDuration, working, err := u.calendar.ScheduleFor(ctx, doctorID, day.Weekday())
	if err != nil {
		return nil, err
	}
	if !working {
		return []responses.Slot{}, nil
	}

	// One query for the whole day; the midnight boundary is widened by a
	// minute because the window is an open interval.
	appointments, err := u.appointmentRepository.FindActiveInWindow(ctx, doctorID, day.Add(-time.Minute), day.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	slots := make([]responses.Slot, 0)
	for minute := schedule.StartMinute; minute+slotDuration <= schedule.EndMinute; minute += slotDuration {
		slotTime := day.Add(time.Duration(minute) * time.Minute)
		slots = append(slots, responses.Slot{
			Time:      utils.MinutesToClock(minute),
			Available: slotAvailable(slotTime, slotDuration, appointments),
		})
	}

	u.log.Info("SlotUsecase.GenerateSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return slots, nil
}

// slotAvailable applies the booking buffer: a slot is blocked when any
// active appointment lies strictly closer than the buffer. An appointment
// exactly one buffer away does not block.
func slotAvailable(slotTime time.Time, bufferMinutes int, appointments []models.Appointment) bool {
	buffer := time.Duration(bufferMinutes) * time.Minute
	for _, appointment := range appointments {
		diff := appointment.ScheduledAt.Sub(slotTime)
		if diff < 0 {
			diff = -diff
		}
		if diff < buffer {
			return false
		}
	}
	return true
}
