package assignment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearshift/workforce-backend-go/internal/pkg/timeutil"
)

func interval(t *testing.T, shiftID, workerID, date, start, end string) ScheduledInterval {
	t.Helper()
	d, err := timeutil.ParseDate(date)
	require.NoError(t, err)
	s, err := timeutil.ParseClock(start)
	require.NoError(t, err)
	e, err := timeutil.ParseClock(end)
	require.NoError(t, err)
	return ScheduledInterval{ShiftID: shiftID, WorkerID: workerID, Date: d, StartTime: s, EndTime: e}
}

func TestHasConflict(t *testing.T) {
	existing := []ScheduledInterval{
		interval(t, "shift-1", "worker-1", "2025-06-02", "09:00", "17:00"),
		interval(t, "shift-2", "worker-2", "2025-06-02", "09:00", "17:00"),
		interval(t, "shift-3", "worker-1", "2025-06-03", "09:00", "17:00"),
	}

	date := func(s string) time.Time {
		d, err := timeutil.ParseDate(s)
		require.NoError(t, err)
		return d
	}
	at := func(s string) time.Time {
		c, err := timeutil.ParseClock(s)
		require.NoError(t, err)
		return c
	}

	t.Run("overlapping interval conflicts", func(t *testing.T) {
		assert.True(t, HasConflict(existing, "worker-1", date("2025-06-02"), at("16:00"), at("20:00"), ""))
	})

	t.Run("other worker ignored", func(t *testing.T) {
		assert.False(t, HasConflict(existing, "worker-3", date("2025-06-02"), at("09:00"), at("17:00"), ""))
	})

	t.Run("other date ignored", func(t *testing.T) {
		assert.False(t, HasConflict(existing, "worker-1", date("2025-06-04"), at("09:00"), at("17:00"), ""))
	})

	t.Run("back-to-back shift does not conflict", func(t *testing.T) {
		assert.False(t, HasConflict(existing, "worker-1", date("2025-06-02"), at("17:00"), at("21:00"), ""))
	})

	t.Run("identical interval conflicts", func(t *testing.T) {
		assert.True(t, HasConflict(existing, "worker-1", date("2025-06-02"), at("09:00"), at("17:00"), ""))
	})

	t.Run("excluded shift skipped when editing", func(t *testing.T) {
		assert.False(t, HasConflict(existing, "worker-1", date("2025-06-02"), at("09:00"), at("17:00"), "shift-1"))
	})
}
