package schedules

import (
	"context"
	"fmt"

	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	doctorRepository contracts.DoctorRepository
	redisRepository  contracts.RedisRepository
	log              *zap.Logger
}

func NewScheduleUsecase(
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		doctorRepository: doctorRepository,
		redisRepository:  redisRepository,
		log:              logger,
	}
}

// UpsertWeeklySchedule replaces the calling doctor's weekly availability.
// Only doctors can publish a schedule, and only their own.
func (u *scheduleUsecase) UpsertWeeklySchedule(ctx context.Context, session *models.Session, request *requests.UpsertWeeklyScheduleRequest) (*responses.WeeklySchedule, error) {
	requestID := utils.GetRequestID(ctx)
	u.log.Info("ScheduleUsecase.UpsertWeeklySchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsDoctor() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	availability, err := buildAvailability(request)
	if err != nil {
		return nil, err
	}

	err = u.doctorRepository.UpdateAvailability(ctx, session.DoctorID, availability)
	if err != nil {
		return nil, err
	}

	cacheKey := constvars.RedisKeyWeeklySchedule + session.DoctorID
	err = u.redisRepository.Delete(ctx, cacheKey)
	if err != nil {
		u.log.Warn("ScheduleUsecase.UpsertWeeklySchedule cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}

	u.log.Info("ScheduleUsecase.UpsertWeeklySchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
	)
	return scheduleResponse(session.DoctorID, availability), nil
}

func (u *scheduleUsecase) GetWeeklySchedule(ctx context.Context, doctorID string) (*responses.WeeklySchedule, error) {
	requestID := utils.GetRequestID(ctx)
	u.log.Info("ScheduleUsecase.GetWeeklySchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := u.doctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	if doctor.Availability.SlotDurationMinutes == 0 {
		return nil, exceptions.ErrScheduleNotFound(nil)
	}
	return scheduleResponse(doctorID, doctor.Availability), nil
}

// buildAvailability converts the request rows into the stored weekly table,
// rejecting duplicate days and inverted working windows.
func buildAvailability(request *requests.UpsertWeeklyScheduleRequest) (models.WeeklyAvailability, error) {
	availability := models.NewWeeklyAvailability()
	if request.SlotDurationMinutes > 0 {
		availability.SlotDurationMinutes = request.SlotDurationMinutes
	}

	var seen [7]bool
	for _, day := range request.Days {
		if seen[day.DayOfWeek] {
			return models.WeeklyAvailability{}, exceptions.WrapWithoutError(
				constvars.StatusBadRequest,
				fmt.Sprintf("day %d appears more than once", day.DayOfWeek),
				constvars.ErrDevValidationFailed,
			)
		}
		seen[day.DayOfWeek] = true

		if !day.IsWorking {
			availability.Days[day.DayOfWeek] = models.DaySchedule{DayOfWeek: day.DayOfWeek}
			continue
		}

		start, err := utils.ClockToMinutes(day.StartTime)
		if err != nil {
			return models.WeeklyAvailability{}, exceptions.ErrCannotParseTime(err)
		}
		end, err := utils.ClockToMinutes(day.EndTime)
		if err != nil {
			return models.WeeklyAvailability{}, exceptions.ErrCannotParseTime(err)
		}
		if start >= end {
			return models.WeeklyAvailability{}, exceptions.WrapWithoutError(
				constvars.StatusBadRequest,
				fmt.Sprintf("day %d start time must be before end time", day.DayOfWeek),
				constvars.ErrDevValidationFailed,
			)
		}

		availability.Days[day.DayOfWeek] = models.DaySchedule{
			DayOfWeek:   day.DayOfWeek,
			IsWorking:   true,
			StartMinute: start,
			EndMinute:   end,
		}
	}
	return availability, nil
}

func scheduleResponse(doctorID string, availability models.WeeklyAvailability) *responses.WeeklySchedule {
	days := make([]responses.DaySchedule, 0, len(availability.Days))
	for _, day := range availability.Days {
		item := responses.DaySchedule{
			DayOfWeek: day.DayOfWeek,
			IsWorking: day.IsWorking,
		}
		if day.IsWorking {
			item.StartTime = utils.MinutesToClock(day.StartMinute)
			item.EndTime = utils.MinutesToClock(day.EndMinute)
		}
		days = append(days, item)
	}
	return &responses.WeeklySchedule{
		DoctorID:            doctorID,
		Days:                days,
		SlotDurationMinutes: availability.SlotDurationMinutes,
	}
}
