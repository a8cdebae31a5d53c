package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyReviewed  = errors.New("leave request already reviewed")
	ErrEndBeforeStart   = errors.New("end date is before start date")
	ErrOverlappingLeave = errors.New("overlapping leave request exists")
)
