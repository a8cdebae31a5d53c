package attendance

import (
	"fmt"
	"math"
)

// DefaultLateAfter is the time-of-day threshold after which a full-day
// check-in counts as Late.
const DefaultLateAfter = "09:30"

// DeriveState recomputes Status, WorkingHours and WorkingHoursText from the
// record's check-in/check-out timestamps. lateAfter is a "15:04" time-of-day
// string. The function is pure: it never touches storage and callers must
// invoke it before every persist of a record whose inputs changed.
//
// Rules, in order:
//  1. an On Leave record is an administrative override and is left alone
//  2. check-in without check-out means the employee is still Working
//  3. with both timestamps, status follows worked hours: under 4h Absent,
//     under 8h Half Day, 8h or more Present, or Late when the check-in
//     time-of-day is after lateAfter. A check-out earlier than the check-in
//     clamps to zero hours.
//  4. no timestamps at all means Absent
func DeriveState(rec Record, lateAfter string) Record {
	if rec.Status == StatusOnLeave {
		return rec
	}

	switch {
	case rec.CheckIn != nil && rec.CheckOut == nil:
		rec.Status = StatusWorking

	case rec.CheckIn != nil && rec.CheckOut != nil:
		seconds := rec.CheckOut.Sub(*rec.CheckIn).Seconds()
		if seconds < 0 {
			seconds = 0
		}
		hours := seconds / 3600

		switch {
		case hours < 4:
			rec.Status = StatusAbsent
		case hours < 8:
			rec.Status = StatusHalfDay
		case rec.CheckIn.Format("15:04") > lateAfter:
			rec.Status = StatusLate
		default:
			rec.Status = StatusPresent
		}

		rec.WorkingHours = math.Round(hours*100) / 100
		rec.WorkingHoursText = formatWorkingHours(seconds)

	default:
		rec.Status = StatusAbsent
	}

	return rec
}

func formatWorkingHours(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
}
