package appointments

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hospicare-service/internal/app/config"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepository) FindByID(_ context.Context, doctorID string) (*models.Doctor, error) {
	return f.doctors[doctorID], nil
}

func (f *fakeDoctorRepository) UpdateAvailability(_ context.Context, doctorID string, availability models.WeeklyAvailability) error {
	f.doctors[doctorID].Availability = availability
	return nil
}

type fakePatientRepository struct {
	patients map[string]bool
}

func (f *fakePatientRepository) Exists(_ context.Context, patientID string) (bool, error) {
	return f.patients[patientID], nil
}

type fakeCalendar struct {
	availability models.WeeklyAvailability
}

func (f *fakeCalendar) ScheduleFor(_ context.Context, _ string, weekday time.Weekday) (models.DaySchedule, int, bool, error) {
	slotDuration := f.availability.SlotDurationMinutes
	if slotDuration <= 0 {
		slotDuration = constvars.SlotDurationMinutesDefault
	}
	schedule, working := f.availability.ScheduleFor(weekday)
	return schedule, slotDuration, working, nil
}

// fakeAppointmentStore emulates the partial unique index on
// (doctorId, slotKey) over scheduled documents, atomically under a mutex.
type fakeAppointmentStore struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	sequence     int
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentStore) Insert(_ context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.appointments {
		if existing.DoctorID == appointment.DoctorID &&
			existing.SlotKey == appointment.SlotKey &&
			existing.Status == models.AppointmentStatusScheduled {
			return nil, exceptions.ErrSlotTaken(nil)
		}
	}
	f.sequence++
	appointment.ID = fmt.Sprintf("appointment-%d", f.sequence)
	stored := *appointment
	f.appointments[appointment.ID] = &stored
	return appointment, nil
}

func (f *fakeAppointmentStore) FindByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	found := *stored
	return &found, nil
}

func (f *fakeAppointmentStore) FindActiveInWindow(_ context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matches := make([]models.Appointment, 0)
	for _, appointment := range f.appointments {
		if appointment.DoctorID != doctorID || !appointment.Status.Active() {
			continue
		}
		if appointment.ScheduledAt.After(from) && appointment.ScheduledAt.Before(to) {
			matches = append(matches, *appointment)
		}
	}
	return matches, nil
}

func (f *fakeAppointmentStore) FindByDoctorID(_ context.Context, doctorID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matches := make([]models.Appointment, 0)
	for _, appointment := range f.appointments {
		if appointment.DoctorID == doctorID {
			matches = append(matches, *appointment)
		}
	}
	return matches, nil
}

func (f *fakeAppointmentStore) FindByPatientID(_ context.Context, patientID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matches := make([]models.Appointment, 0)
	for _, appointment := range f.appointments {
		if appointment.PatientID == patientID {
			matches = append(matches, *appointment)
		}
	}
	return matches, nil
}

func (f *fakeAppointmentStore) UpdateStatusFrom(_ context.Context, appointmentID string, expected, next models.AppointmentStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.appointments[appointmentID]
	if !ok || stored.Status != expected {
		return false, nil
	}
	stored.Status = next
	return true, nil
}

type fakeLocker struct {
	acquire bool
}

func (f *fakeLocker) TryLock(_ context.Context, _ string, _ time.Duration) (bool, string, error) {
	return f.acquire, "lock-value", nil
}

func (f *fakeLocker) Unlock(_ context.Context, _, _ string) error {
	return nil
}

type fakeNotificationSink struct {
	events chan string
}

func newFakeNotificationSink() *fakeNotificationSink {
	return &fakeNotificationSink{events: make(chan string, 32)}
}

func (f *fakeNotificationSink) Notify(_ context.Context, userID, event, _ string) error {
	f.events <- userID + ":" + event
	return nil
}

func (f *fakeNotificationSink) waitForEvents(t *testing.T, count int) []string {
	t.Helper()
	received := make([]string, 0, count)
	for len(received) < count {
		select {
		case event := <-f.events:
			received = append(received, event)
		case <-time.After(2 * time.Second):
			t.Fatalf("expected %d notification events, got %d", count, len(received))
		}
	}
	return received
}

type bookingFixture struct {
	store   *fakeAppointmentStore
	sink    *fakeNotificationSink
	usecase contracts.AppointmentUsecase
}

const (
	testDate = "2030-09-02"
	testTime = "09:00"
)

func testAvailability(date string, startMinute, endMinute, slotDuration int) models.WeeklyAvailability {
	day, err := utils.ParseDate(date)
	if err != nil {
		panic(err)
	}
	availability := models.NewWeeklyAvailability()
	availability.SlotDurationMinutes = slotDuration
	availability.Days[int(day.Weekday())] = models.DaySchedule{
		DayOfWeek:   int(day.Weekday()),
		IsWorking:   true,
		StartMinute: startMinute,
		EndMinute:   endMinute,
	}
	return availability
}

func newBookingFixture(locker contracts.LockerService) *bookingFixture {
	store := newFakeAppointmentStore()
	sink := newFakeNotificationSink()

	doctorRepository := &fakeDoctorRepository{doctors: map[string]*models.Doctor{
		"doctor-1": {ID: "doctor-1", FullName: "Dr. Test", Role: constvars.RoleDoctor, Approved: true},
		"doctor-2": {ID: "doctor-2", FullName: "Dr. Pending", Role: constvars.RoleDoctor, Approved: false},
	}}
	patientRepository := &fakePatientRepository{patients: map[string]bool{"patient-1": true, "patient-2": true}}
	// 09:00 to 18:00, 30 minute slots.
	calendar := &fakeCalendar{availability: testAvailability(testDate, 540, 1080, 30)}

	internalConfig := &config.InternalConfig{
		Scheduling: config.Scheduling{BookingLockTTLInSeconds: 10},
	}

	return &bookingFixture{
		store: store,
		sink:  sink,
		usecase: NewAppointmentUsecase(
			doctorRepository,
			patientRepository,
			store,
			NewConflictChecker(store),
			calendar,
			locker,
			sink,
			internalConfig,
			zap.NewNop(),
		),
	}
}

func patientSession() *models.Session {
	return &models.Session{UserID: "user-1", Role: constvars.RolePatient, PatientID: "patient-1"}
}

func doctorSession() *models.Session {
	return &models.Session{UserID: "user-2", Role: constvars.RoleDoctor, DoctorID: "doctor-1"}
}

func bookingRequest(doctorID, date, clock string) *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{DoctorID: doctorID, Date: date, Time: clock}
}

func assertFailure(t *testing.T, err error, statusCode int, clientMessage string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, statusCode, customErr.StatusCode)
	if clientMessage != "" {
		assert.Equal(t, clientMessage, customErr.ClientMessage)
	}
}

func TestCreateAppointment(t *testing.T) {
	t.Run("books a free slot inside business hours", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		result, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, testTime))
		require.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, string(models.AppointmentStatusScheduled), result.Status)
		assert.Equal(t, "patient-1", result.PatientID)

		events := fixture.sink.waitForEvents(t, 2)
		assert.Contains(t, events, "patient-1:appointment_booked")
		assert.Contains(t, events, "doctor-1:appointment_booked")
	})

	t.Run("rebooking the same slot fails with slot taken", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, testTime))
		require.NoError(t, err)

		otherPatient := &models.Session{UserID: "user-3", Role: constvars.RolePatient, PatientID: "patient-2"}
		_, err = fixture.usecase.CreateAppointment(context.Background(), otherPatient, bookingRequest("doctor-1", testDate, testTime))
		assertFailure(t, err, constvars.StatusConflict, constvars.ErrClientSlotTaken)
	})

	t.Run("booking exactly one slot after an existing one succeeds", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, "09:00"))
		require.NoError(t, err)

		_, err = fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, "09:30"))
		require.NoError(t, err)
	})

	t.Run("booking closer than the buffer fails", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, "09:00"))
		require.NoError(t, err)

		_, err = fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, "09:15"))
		assertFailure(t, err, constvars.StatusConflict, constvars.ErrClientSlotTaken)
	})

	t.Run("before opening time", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, "08:30"))
		assertFailure(t, err, constvars.StatusUnprocessableEntity, constvars.ErrClientOutsideBusinessHours)
	})

	t.Run("slot that would run past closing time", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, "17:45"))
		assertFailure(t, err, constvars.StatusUnprocessableEntity, constvars.ErrClientOutsideBusinessHours)
	})

	t.Run("day off", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		// The fixture only opens the weekday of testDate; the next day is off.
		day, err := utils.ParseDate(testDate)
		require.NoError(t, err)
		nextDay := day.Add(24 * time.Hour).Format(constvars.DateLayout)

		_, err = fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", nextDay, testTime))
		assertFailure(t, err, constvars.StatusUnprocessableEntity, constvars.ErrClientOutsideBusinessHours)
	})

	t.Run("past date", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", "2020-01-06", testTime))
		assertFailure(t, err, constvars.StatusBadRequest, constvars.ErrClientAppointmentPastDate)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-missing", testDate, testTime))
		assertFailure(t, err, constvars.StatusNotFound, constvars.ErrClientDoctorNotFound)
	})

	t.Run("unapproved doctor", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-2", testDate, testTime))
		assertFailure(t, err, constvars.StatusUnprocessableEntity, constvars.ErrClientDoctorUnavailable)
	})

	t.Run("unknown patient", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		session := &models.Session{UserID: "user-9", Role: constvars.RolePatient, PatientID: "patient-missing"}
		_, err := fixture.usecase.CreateAppointment(context.Background(), session, bookingRequest("doctor-1", testDate, testTime))
		assertFailure(t, err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound)
	})

	t.Run("non patient role cannot book", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CreateAppointment(context.Background(), doctorSession(), bookingRequest("doctor-1", testDate, testTime))
		assertFailure(t, err, constvars.StatusForbidden, "")
	})

	t.Run("malformed time", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, "9am"))
		assertFailure(t, err, constvars.StatusBadRequest, "")
	})

	t.Run("slot already locked by another request", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: false})

		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, testTime))
		assertFailure(t, err, constvars.StatusConflict, constvars.ErrClientSlotLocked)
	})
}

func TestCreateAppointmentConcurrent(t *testing.T) {
	t.Run("exactly one of two simultaneous bookings wins", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		sessions := []*models.Session{
			{UserID: "user-1", Role: constvars.RolePatient, PatientID: "patient-1"},
			{UserID: "user-3", Role: constvars.RolePatient, PatientID: "patient-2"},
		}

		var wg sync.WaitGroup
		results := make([]error, len(sessions))
		for i, session := range sessions {
			wg.Add(1)
			go func(i int, session *models.Session) {
				defer wg.Done()
				_, err := fixture.usecase.CreateAppointment(context.Background(), session, bookingRequest("doctor-1", testDate, testTime))
				results[i] = err
			}(i, session)
		}
		wg.Wait()

		successes := 0
		for _, err := range results {
			if err == nil {
				successes++
				continue
			}
			assertFailure(t, err, constvars.StatusConflict, "")
		}
		assert.Equal(t, 1, successes)
	})
}

func TestAppointmentTransitions(t *testing.T) {
	book := func(t *testing.T, fixture *bookingFixture) string {
		t.Helper()
		result, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, testTime))
		require.NoError(t, err)
		return result.ID
	}

	t.Run("doctor completes a scheduled appointment", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})
		appointmentID := book(t, fixture)

		result, err := fixture.usecase.CompleteAppointment(context.Background(), doctorSession(), appointmentID)
		require.NoError(t, err)
		assert.Equal(t, string(models.AppointmentStatusCompleted), result.Status)
	})

	t.Run("patient cannot complete", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})
		appointmentID := book(t, fixture)

		_, err := fixture.usecase.CompleteAppointment(context.Background(), patientSession(), appointmentID)
		assertFailure(t, err, constvars.StatusForbidden, "")
	})

	t.Run("patient cancels their own appointment", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})
		appointmentID := book(t, fixture)

		result, err := fixture.usecase.CancelAppointment(context.Background(), patientSession(), appointmentID)
		require.NoError(t, err)
		assert.Equal(t, string(models.AppointmentStatusCancelled), result.Status)
	})

	t.Run("completing twice fails", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})
		appointmentID := book(t, fixture)

		_, err := fixture.usecase.CompleteAppointment(context.Background(), doctorSession(), appointmentID)
		require.NoError(t, err)

		_, err = fixture.usecase.CompleteAppointment(context.Background(), doctorSession(), appointmentID)
		assertFailure(t, err, constvars.StatusConflict, constvars.ErrClientInvalidStateTransition)
	})

	t.Run("cancelling a completed appointment fails", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})
		appointmentID := book(t, fixture)

		_, err := fixture.usecase.CompleteAppointment(context.Background(), doctorSession(), appointmentID)
		require.NoError(t, err)

		_, err = fixture.usecase.CancelAppointment(context.Background(), patientSession(), appointmentID)
		assertFailure(t, err, constvars.StatusConflict, constvars.ErrClientInvalidStateTransition)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})

		_, err := fixture.usecase.CompleteAppointment(context.Background(), doctorSession(), "appointment-missing")
		assertFailure(t, err, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound)
	})

	t.Run("cancelled slot can be rebooked", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})
		appointmentID := book(t, fixture)

		_, err := fixture.usecase.CancelAppointment(context.Background(), patientSession(), appointmentID)
		require.NoError(t, err)

		_, err = fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, testTime))
		require.NoError(t, err)
	})

	t.Run("concurrent complete and cancel settle on one terminal state", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})
		appointmentID := book(t, fixture)

		var wg sync.WaitGroup
		var completeErr, cancelErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, completeErr = fixture.usecase.CompleteAppointment(context.Background(), doctorSession(), appointmentID)
		}()
		go func() {
			defer wg.Done()
			_, cancelErr = fixture.usecase.CancelAppointment(context.Background(), patientSession(), appointmentID)
		}()
		wg.Wait()

		failures := 0
		if completeErr != nil {
			assertFailure(t, completeErr, constvars.StatusConflict, "")
			failures++
		}
		if cancelErr != nil {
			assertFailure(t, cancelErr, constvars.StatusConflict, "")
			failures++
		}
		assert.Equal(t, 1, failures)
	})
}

func TestFindAll(t *testing.T) {
	t.Run("doctor sees their own appointments", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})
		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, testTime))
		require.NoError(t, err)

		results, err := fixture.usecase.FindAll(context.Background(), doctorSession())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "doctor-1", results[0].DoctorID)
	})

	t.Run("patient sees their own appointments", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})
		_, err := fixture.usecase.CreateAppointment(context.Background(), patientSession(), bookingRequest("doctor-1", testDate, testTime))
		require.NoError(t, err)

		results, err := fixture.usecase.FindAll(context.Background(), patientSession())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "patient-1", results[0].PatientID)
	})

	t.Run("other roles are rejected", func(t *testing.T) {
		fixture := newBookingFixture(&fakeLocker{acquire: true})
		session := &models.Session{UserID: "user-4", Role: constvars.RoleReceptionist}

		_, err := fixture.usecase.FindAll(context.Background(), session)
		assertFailure(t, err, constvars.StatusForbidden, "")
	})
}
