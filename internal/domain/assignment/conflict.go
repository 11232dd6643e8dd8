package assignment

import (
	"time"

	"github.com/clearshift/workforce-backend-go/internal/pkg/timeutil"
)

// ScheduledInterval is the slice of an assignment the conflict checker needs:
// who works when, joined from the assignment and its shift.
type ScheduledInterval struct {
	ShiftID   string
	WorkerID  string
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
}

// HasConflict reports whether the proposed interval overlaps any of the
// worker's existing assignments on the same date. excludeShiftID skips the
// shift being edited; pass "" when creating. Back-to-back intervals do not
// conflict (see timeutil.Overlaps).
func HasConflict(existing []ScheduledInterval, workerID string, date, start, end time.Time, excludeShiftID string) bool {
	for _, iv := range existing {
		if iv.WorkerID != workerID {
			continue
		}
		if !timeutil.SameDate(iv.Date, date) {
			continue
		}
		if excludeShiftID != "" && iv.ShiftID == excludeShiftID {
			continue
		}
		if timeutil.Overlaps(iv.StartTime, iv.EndTime, start, end) {
			return true
		}
	}
	return false
}
