package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ParseClock(s)
	require.NoError(t, err)
	return parsed
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		startA, endA, startB, endB     string
		want                           bool
	}{
		{"identical intervals", "09:00", "17:00", "09:00", "17:00", true},
		{"contained interval", "09:00", "17:00", "10:00", "12:00", true},
		{"partial overlap at end", "09:00", "17:00", "16:00", "20:00", true},
		{"partial overlap at start", "09:00", "17:00", "06:00", "10:00", true},
		{"disjoint before", "09:00", "12:00", "13:00", "17:00", false},
		{"disjoint after", "13:00", "17:00", "09:00", "12:00", false},
		// Back-to-back shifts share a boundary instant but never conflict.
		{"back-to-back", "09:00", "17:00", "17:00", "21:00", false},
		{"back-to-back reversed", "17:00", "21:00", "09:00", "17:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(
				clock(t, tt.startA), clock(t, tt.endA),
				clock(t, tt.startB), clock(t, tt.endB),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDurationHours(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("whole hours", func(t *testing.T) {
		hours, err := DurationHours(base, base.Add(8*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 8.0, hours)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		hours, err := DurationHours(base, base.Add(7*time.Hour+50*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 7.83, hours)
	})

	t.Run("ten minutes", func(t *testing.T) {
		hours, err := DurationHours(base, base.Add(10*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 0.17, hours)
	})

	t.Run("end equals start", func(t *testing.T) {
		_, err := DurationHours(base, base)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := DurationHours(base, base.Add(-time.Minute))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestAt(t *testing.T) {
	date, err := ParseDate("2025-06-02")
	require.NoError(t, err)

	instant := At(date, clock(t, "09:30"))
	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), instant)
}
