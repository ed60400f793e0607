package appointments

import (
	"context"
	"fmt"
	"time"

	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/dto/responses"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	eventAppointmentBooked    = "appointment_booked"
	eventAppointmentCompleted = "appointment_completed"
	eventAppointmentCancelled = "appointment_cancelled"

	notifyTimeout = 5 * time.Second
)

type appointmentUsecase struct {
	doctorRepository      contracts.DoctorRepository
	patientRepository     contracts.PatientRepository
	appointmentRepository contracts.AppointmentRepository
	conflictChecker       contracts.ConflictChecker
	calendar              contracts.BusinessHoursCalendar
	locker                contracts.LockerService
	notificationSink      contracts.NotificationSink
	lockTTL               time.Duration
	now                   func() time.Time
	log                   *zap.Logger
}

func NewAppointmentUsecase(
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	appointmentRepository contracts.AppointmentRepository,
	conflictChecker contracts.ConflictChecker,
	calendar contracts.BusinessHoursCalendar,
	locker contracts.LockerService,
	notificationSink contracts.NotificationSink,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		doctorRepository:      doctorRepository,
		patientRepository:     patientRepository,
		appointmentRepository: appointmentRepository,
		conflictChecker:       conflictChecker,
		calendar:              calendar,
		locker:                locker,
		notificationSink:      notificationSink,
		lockTTL:               time.Duration(internalConfig.Scheduling.BookingLockTTLInSeconds) * time.Second,
		now:                   time.Now,
		log:                   logger,
	}
}

// CreateAppointment books a slot for the calling patient. Validation runs
// strictly in order: input shape, past date, doctor eligibility, business
// hours, patient existence, conflict scan, then the guarded insert.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointmentRequest) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	u.log.Info("AppointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	request.PatientID = session.PatientID

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	request.ScheduledAt, err = utils.CombineDateTime(request.Date, request.Time)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if !request.ScheduledAt.After(u.now()) {
		return nil, exceptions.ErrAppointmentPastDate(nil)
	}

	doctor, err := u.doctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	if !doctor.Bookable() {
		return nil, exceptions.ErrDoctorUnavailable(nil)
	}

	slotDuration, err := u.checkBusinessHours(ctx, request)
	if err != nil {
		return nil, err
	}

	exists, err := u.patientRepository.Exists(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	conflict, err := u.conflictChecker.HasConflict(ctx, request.DoctorID, request.ScheduledAt, slotDuration)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, exceptions.ErrSlotTaken(nil)
	}

	appointment, err := u.insertGuarded(ctx, request)
	if err != nil {
		return nil, err
	}

	u.log.Info("AppointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.Time(constvars.LoggingAppointmentTimeKey, appointment.ScheduledAt),
	)

	u.notifyAsync(appointment.PatientID, eventAppointmentBooked,
		fmt.Sprintf("your appointment on %s is confirmed", appointment.ScheduledAt.Format(time.RFC1123)))
	u.notifyAsync(appointment.DoctorID, eventAppointmentBooked,
		fmt.Sprintf("a new appointment was booked for %s", appointment.ScheduledAt.Format(time.RFC1123)))

	return appointmentResponse(appointment), nil
}

// checkBusinessHours verifies the requested time starts inside the working
// window and the whole slot ends by closing time. It returns the doctor's
// slot duration, which doubles as the conflict buffer.
func (u *appointmentUsecase) checkBusinessHours(ctx context.Context, request *requests.CreateAppointmentRequest) (int, error) {
	schedule, slotDuration, working, err := u.calendar.ScheduleFor(ctx, request.DoctorID, request.ScheduledAt.Weekday())
	if err != nil {
		return 0, err
	}
	if !working {
		return 0, exceptions.ErrOutsideBusinessHours(nil)
	}

	minuteOfDay, err := utils.ClockToMinutes(request.Time)
	if err != nil {
		return 0, exceptions.ErrCannotParseTime(err)
	}
	if minuteOfDay < schedule.StartMinute || minuteOfDay+slotDuration > schedule.EndMinute {
		return 0, exceptions.ErrOutsideBusinessHours(nil)
	}
	return slotDuration, nil
}

// insertGuarded serializes the attempt behind a short redis lock, then
// relies on the partial unique index to reject a double-booking that slips
// past the lock. Lock failures degrade to the index alone.
func (u *appointmentUsecase) insertGuarded(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	appointment := models.NewAppointment(request.DoctorID, request.PatientID, request.ScheduledAt, request.Notes)
	lockKey := constvars.RedisKeyAppointmentLock + appointment.DoctorID + ":" + appointment.SlotKey

	acquired, lockValue, err := u.locker.TryLock(ctx, lockKey, u.lockTTL)
	if err != nil {
		u.log.Warn("AppointmentUsecase.insertGuarded lock unavailable, relying on unique index",
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
	} else if !acquired {
		return nil, exceptions.ErrSlotLocked(nil)
	}

	inserted, insertErr := u.appointmentRepository.Insert(ctx, appointment)

	if acquired {
		err = u.locker.Unlock(ctx, lockKey, lockValue)
		if err != nil {
			u.log.Warn("AppointmentUsecase.insertGuarded unlock failed, lock will expire",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}
	return inserted, insertErr
}

func (u *appointmentUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	u.log.Info("AppointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var appointments []models.Appointment
	var err error
	switch {
	case session.IsDoctor():
		appointments, err = u.appointmentRepository.FindByDoctorID(ctx, session.DoctorID)
	case session.IsPatient():
		appointments, err = u.appointmentRepository.FindByPatientID(ctx, session.PatientID)
	default:
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if err != nil {
		return nil, err
	}

	results := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		results = append(results, *appointmentResponse(&appointments[i]))
	}

	u.log.Info("AppointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(results)),
	)
	return results, nil
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	return u.transition(ctx, session, appointmentID, models.AppointmentStatusCompleted)
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	return u.transition(ctx, session, appointmentID, models.AppointmentStatusCancelled)
}

// transition moves a Scheduled appointment to a terminal status. The
// conditional update makes concurrent transitions race safely: exactly one
// matches, the loser gets InvalidStateTransition.
func (u *appointmentUsecase) transition(ctx context.Context, session *models.Session, appointmentID string, next models.AppointmentStatus) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	u.log.Info("AppointmentUsecase.transition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("next_status", string(next)),
	)

	appointment, err := u.appointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	err = u.authorizeTransition(session, appointment, next)
	if err != nil {
		return nil, err
	}

	if !appointment.Status.CanTransitionTo(next) {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	matched, err := u.appointmentRepository.UpdateStatusFrom(ctx, appointmentID, models.AppointmentStatusScheduled, next)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}
	appointment.Status = next

	event := eventAppointmentCompleted
	message := fmt.Sprintf("your appointment on %s was marked completed", appointment.ScheduledAt.Format(time.RFC1123))
	if next == models.AppointmentStatusCancelled {
		event = eventAppointmentCancelled
		message = fmt.Sprintf("the appointment on %s was cancelled", appointment.ScheduledAt.Format(time.RFC1123))
	}
	u.notifyAsync(appointment.PatientID, event, message)
	u.notifyAsync(appointment.DoctorID, event, message)

	return appointmentResponse(appointment), nil
}

// Completion is a clinical action reserved for the treating doctor;
// cancellation is open to either party. Admins may do both.
func (u *appointmentUsecase) authorizeTransition(session *models.Session, appointment *models.Appointment, next models.AppointmentStatus) error {
	if session.IsAdmin() {
		return nil
	}
	ownsAsDoctor := session.IsDoctor() && session.DoctorID == appointment.DoctorID
	ownsAsPatient := session.IsPatient() && session.PatientID == appointment.PatientID

	if next == models.AppointmentStatusCompleted {
		if ownsAsDoctor {
			return nil
		}
		return exceptions.ErrRoleNotAllowed(nil)
	}
	if ownsAsDoctor || ownsAsPatient {
		return nil
	}
	return exceptions.ErrRoleNotAllowed(nil)
}

// notifyAsync publishes after the booking is committed. Delivery failures
// never surface to the caller.
func (u *appointmentUsecase) notifyAsync(userID, event, message string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		err := u.notificationSink.Notify(ctx, userID, event, message)
		if err != nil {
			u.log.Warn("AppointmentUsecase.notifyAsync delivery failed",
				zap.String(constvars.LoggingNotificationKey, event),
				zap.Error(err),
			)
		}
	}()
}

func appointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		PatientID:   appointment.PatientID,
		ScheduledAt: appointment.ScheduledAt,
		Status:      string(appointment.Status),
		Notes:       appointment.Notes,
	}
}
