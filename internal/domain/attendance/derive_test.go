package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timeAt(hour, minute int) *time.Time {
	t := time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestDeriveState(t *testing.T) {
	cases := []struct {
		name      string
		checkIn   *time.Time
		checkOut  *time.Time
		status    Status
		wantState Status
		wantHours float64
		wantText  string
	}{
		{
			name:      "full day on time is Present",
			checkIn:   timeAt(9, 0),
			checkOut:  timeAt(18, 0),
			wantState: StatusPresent,
			wantHours: 9,
			wantText:  "9h 0m",
		},
		{
			name:      "full day with late check-in is Late",
			checkIn:   timeAt(10, 0),
			checkOut:  timeAt(19, 0),
			wantState: StatusLate,
			wantHours: 9,
			wantText:  "9h 0m",
		},
		{
			name:      "check-in exactly at threshold is Present",
			checkIn:   timeAt(9, 30),
			checkOut:  timeAt(18, 30),
			wantState: StatusPresent,
			wantHours: 9,
			wantText:  "9h 0m",
		},
		{
			name:      "five hours is Half Day",
			checkIn:   timeAt(9, 0),
			checkOut:  timeAt(14, 0),
			wantState: StatusHalfDay,
			wantHours: 5,
			wantText:  "5h 0m",
		},
		{
			name:      "two hours is Absent",
			checkIn:   timeAt(9, 0),
			checkOut:  timeAt(11, 0),
			wantState: StatusAbsent,
			wantHours: 2,
			wantText:  "2h 0m",
		},
		{
			name:      "fractional hours round to two decimals",
			checkIn:   timeAt(9, 0),
			checkOut:  timeAt(17, 20),
			wantState: StatusPresent,
			wantHours: 8.33,
			wantText:  "8h 20m",
		},
		{
			name:      "check-out before check-in clamps to zero",
			checkIn:   timeAt(14, 0),
			checkOut:  timeAt(9, 0),
			wantState: StatusAbsent,
			wantHours: 0,
			wantText:  "0h 0m",
		},
		{
			name:      "check-in only is Working",
			checkIn:   timeAt(9, 0),
			wantState: StatusWorking,
		},
		{
			name:      "no timestamps is Absent",
			wantState: StatusAbsent,
		},
		{
			name:      "On Leave overrides timestamps",
			checkIn:   timeAt(9, 0),
			checkOut:  timeAt(18, 0),
			status:    StatusOnLeave,
			wantState: StatusOnLeave,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := Record{
				CheckIn:  c.checkIn,
				CheckOut: c.checkOut,
				Status:   c.status,
			}
			got := DeriveState(rec, DefaultLateAfter)

			assert.Equal(t, c.wantState, got.Status)
			assert.Equal(t, c.wantHours, got.WorkingHours)
			if c.wantText != "" {
				assert.Equal(t, c.wantText, got.WorkingHoursText)
			}
		})
	}
}

func TestDeriveState_IsPure(t *testing.T) {
	rec := Record{
		CheckIn:  timeAt(9, 0),
		CheckOut: timeAt(18, 0),
	}

	first := DeriveState(rec, DefaultLateAfter)
	second := DeriveState(rec, DefaultLateAfter)

	assert.Equal(t, first, second)
	assert.Equal(t, Status(""), rec.Status, "input record must not be mutated")
}

func TestDeriveState_CustomThreshold(t *testing.T) {
	rec := Record{
		CheckIn:  timeAt(9, 0),
		CheckOut: timeAt(18, 0),
	}

	got := DeriveState(rec, "08:30")
	assert.Equal(t, StatusLate, got.Status)
}
