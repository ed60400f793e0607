package appointments

import (
	"context"
	"testing"
	"time"

	"hospicare-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictChecker(t *testing.T) {
	store := newFakeAppointmentStore()
	existing := models.NewAppointment("doctor-1", "patient-1", time.Date(2030, 9, 2, 9, 0, 0, 0, time.UTC), "")
	_, err := store.Insert(context.Background(), existing)
	require.NoError(t, err)

	checker := NewConflictChecker(store)

	t.Run("same time conflicts", func(t *testing.T) {
		conflict, err := checker.HasConflict(context.Background(), "doctor-1", existing.ScheduledAt, 30)
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("inside the buffer conflicts", func(t *testing.T) {
		conflict, err := checker.HasConflict(context.Background(), "doctor-1", existing.ScheduledAt.Add(15*time.Minute), 30)
		require.NoError(t, err)
		assert.True(t, conflict)

		conflict, err = checker.HasConflict(context.Background(), "doctor-1", existing.ScheduledAt.Add(-29*time.Minute), 30)
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("exactly one buffer apart does not conflict", func(t *testing.T) {
		conflict, err := checker.HasConflict(context.Background(), "doctor-1", existing.ScheduledAt.Add(30*time.Minute), 30)
		require.NoError(t, err)
		assert.False(t, conflict)

		conflict, err = checker.HasConflict(context.Background(), "doctor-1", existing.ScheduledAt.Add(-30*time.Minute), 30)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("other doctors are unaffected", func(t *testing.T) {
		conflict, err := checker.HasConflict(context.Background(), "doctor-2", existing.ScheduledAt, 30)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("cancelled appointments do not conflict", func(t *testing.T) {
		matched, err := store.UpdateStatusFrom(context.Background(), existing.ID, models.AppointmentStatusScheduled, models.AppointmentStatusCancelled)
		require.NoError(t, err)
		require.True(t, matched)

		conflict, err := checker.HasConflict(context.Background(), "doctor-1", existing.ScheduledAt, 30)
		require.NoError(t, err)
		assert.False(t, conflict)
	})
}
