package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"clock-in starts the shift", StatusScheduled, StatusInProgress, true},
		{"clock-out completes the shift", StatusInProgress, StatusCompleted, true},
		{"scheduled can be cancelled", StatusScheduled, StatusCancelled, true},
		{"in-progress can be cancelled", StatusInProgress, StatusCancelled, true},
		{"scheduled can be marked missed", StatusScheduled, StatusMissed, true},
		{"in-progress can be marked missed", StatusInProgress, StatusMissed, true},
		{"draft promotes to scheduled", StatusDraft, StatusScheduled, true},
		{"correction reopens completed", StatusCompleted, StatusInProgress, true},
		{"correction reopens missed", StatusMissed, StatusInProgress, true},

		{"scheduled cannot jump to completed", StatusScheduled, StatusCompleted, false},
		{"completed cannot be cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusInProgress, false},
		{"completed cannot revert to scheduled", StatusCompleted, StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAssignmentTransition(t *testing.T) {
	t.Run("valid transition updates status", func(t *testing.T) {
		a := Assignment{Status: StatusScheduled}
		err := a.Transition(StatusInProgress)
		assert.NoError(t, err)
		assert.Equal(t, StatusInProgress, a.Status)
	})

	t.Run("invalid transition leaves status untouched", func(t *testing.T) {
		a := Assignment{Status: StatusCancelled}
		err := a.Transition(StatusCompleted)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, StatusCancelled, a.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		a := Assignment{Status: StatusScheduled}
		err := a.Transition(Status("archived"))
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("self transition is a no-op", func(t *testing.T) {
		a := Assignment{Status: StatusInProgress}
		assert.NoError(t, a.Transition(StatusInProgress))
	})
}
