package schedules

import (
	"context"
	"time"

	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type businessHoursCalendar struct {
	doctorRepository contracts.DoctorRepository
	redisRepository  contracts.RedisRepository
	cacheTTL         time.Duration
	log              *zap.Logger
}

// NewBusinessHoursCalendar resolves doctors' working windows, reading the
// weekly availability through a redis cache in front of mongo.
func NewBusinessHoursCalendar(
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BusinessHoursCalendar {
	return &businessHoursCalendar{
		doctorRepository: doctorRepository,
		redisRepository:  redisRepository,
		cacheTTL:         time.Duration(internalConfig.Scheduling.ScheduleCacheTTLInSeconds) * time.Second,
		log:              logger,
	}
}

func (c *businessHoursCalendar) ScheduleFor(ctx context.Context, doctorID string, weekday time.Weekday) (models.DaySchedule, int, bool, error) {
	availability, err := c.availabilityFor(ctx, doctorID)
	if err != nil {
		return models.DaySchedule{}, 0, false, err
	}

	slotDuration := availability.SlotDurationMinutes
	if slotDuration <= 0 {
		slotDuration = constvars.SlotDurationMinutesDefault
	}

	schedule, working := availability.ScheduleFor(weekday)
	return schedule, slotDuration, working, nil
}

func (c *businessHoursCalendar) availabilityFor(ctx context.Context, doctorID string) (models.WeeklyAvailability, error) {
	cacheKey := constvars.RedisKeyWeeklySchedule + doctorID

	cached, err := c.redisRepository.Get(ctx, cacheKey)
	if err != nil {
		c.log.Warn("BusinessHoursCalendar.availabilityFor cache read failed",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	} else if cached != "" {
		var availability models.WeeklyAvailability
		if json.Unmarshal([]byte(cached), &availability) == nil {
			return availability, nil
		}
	}

	doctor, err := c.doctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return models.WeeklyAvailability{}, err
	}
	if doctor == nil {
		return models.WeeklyAvailability{}, exceptions.ErrDoctorNotFound(nil)
	}

	err = c.redisRepository.Set(ctx, cacheKey, doctor.Availability, c.cacheTTL)
	if err != nil {
		c.log.Warn("BusinessHoursCalendar.availabilityFor cache write failed",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	return doctor.Availability, nil
}
