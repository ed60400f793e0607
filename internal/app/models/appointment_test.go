package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusTransitions(t *testing.T) {
	t.Run("scheduled can complete or cancel", func(t *testing.T) {
		assert.True(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusCompleted))
		assert.True(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusCancelled))
	})

	t.Run("completed is terminal", func(t *testing.T) {
		assert.False(t, AppointmentStatusCompleted.CanTransitionTo(AppointmentStatusCancelled))
		assert.False(t, AppointmentStatusCompleted.CanTransitionTo(AppointmentStatusScheduled))
		assert.False(t, AppointmentStatusCompleted.CanTransitionTo(AppointmentStatusCompleted))
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		assert.False(t, AppointmentStatusCancelled.CanTransitionTo(AppointmentStatusCompleted))
		assert.False(t, AppointmentStatusCancelled.CanTransitionTo(AppointmentStatusScheduled))
	})

	t.Run("scheduled cannot go back to scheduled", func(t *testing.T) {
		assert.False(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusScheduled))
	})
}

func TestAppointmentStatusActive(t *testing.T) {
	assert.True(t, AppointmentStatusScheduled.Active())
	assert.True(t, AppointmentStatusCompleted.Active())
	assert.False(t, AppointmentStatusCancelled.Active())
}

func TestSlotKeyFor(t *testing.T) {
	t.Run("truncates to the minute in UTC", func(t *testing.T) {
		scheduledAt := time.Date(2026, 9, 7, 9, 0, 42, 999, time.UTC)
		assert.Equal(t, "2026-09-07T09:00", SlotKeyFor(scheduledAt))
	})

	t.Run("normalizes timezone so equal instants share a bucket", func(t *testing.T) {
		jakarta := time.FixedZone("WIB", 7*60*60)
		local := time.Date(2026, 9, 7, 16, 30, 0, 0, jakarta)
		utc := time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC)
		assert.Equal(t, SlotKeyFor(utc), SlotKeyFor(local))
	})
}

func TestNewAppointment(t *testing.T) {
	scheduledAt := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	appointment := NewAppointment("doctor-1", "patient-1", scheduledAt, "first visit")

	assert.Equal(t, AppointmentStatusScheduled, appointment.Status)
	assert.Equal(t, SlotKeyFor(scheduledAt), appointment.SlotKey)
	assert.False(t, appointment.CreatedAt.IsZero())
	assert.False(t, appointment.UpdatedAt.IsZero())
}

func TestWeeklyAvailabilityScheduleFor(t *testing.T) {
	availability := NewWeeklyAvailability()
	availability.Days[1] = DaySchedule{DayOfWeek: 1, IsWorking: true, StartMinute: 540, EndMinute: 1020}

	t.Run("working day", func(t *testing.T) {
		schedule, working := availability.ScheduleFor(time.Monday)
		assert.True(t, working)
		assert.Equal(t, 540, schedule.StartMinute)
	})

	t.Run("day off", func(t *testing.T) {
		_, working := availability.ScheduleFor(time.Sunday)
		assert.False(t, working)
	})

	t.Run("inverted window counts as day off", func(t *testing.T) {
		availability.Days[2] = DaySchedule{DayOfWeek: 2, IsWorking: true, StartMinute: 600, EndMinute: 540}
		_, working := availability.ScheduleFor(time.Tuesday)
		assert.False(t, working)
	})
}
