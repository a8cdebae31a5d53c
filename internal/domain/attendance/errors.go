package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/check-out protocol errors
	ErrAlreadyCheckedIn      = errors.New("already checked in today")
	ErrNotCheckedInYet       = errors.New("not checked in yet")
	ErrCheckOutBeforeCheckIn = errors.New("cannot check out before checking in")
	ErrCheckOutEarlierThanIn = errors.New("check-out time is earlier than check-in time")
	ErrAlreadyCheckedOut     = errors.New("already checked out today")

	// Batch errors
	ErrAutoAbsentBeforeCutoff = errors.New("auto-absent can only run after the cutoff time")

	// General errors
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrDuplicateRecord = errors.New("attendance record already exists for this employee and date")
)

// StateError wraps a protocol error together with the record state that
// caused the rejection, so the API can report the current check-in/out
// times back to the caller.
type StateError struct {
	Err          error
	CheckInTime  *string
	CheckOutTime *string
	WorkingHours *float64
	Status       Status
}

func (e *StateError) Error() string { return e.Err.Error() }

func (e *StateError) Unwrap() error { return e.Err }

// Details renders the wrapped state as a string map for error responses.
func (e *StateError) Details() map[string]string {
	details := map[string]string{"status": string(e.Status)}
	if e.CheckInTime != nil {
		details["check_in_time"] = *e.CheckInTime
	}
	if e.CheckOutTime != nil {
		details["check_out_time"] = *e.CheckOutTime
	}
	return details
}
