package onboarding

import "errors"

var (
	ErrTaskNotFound      = errors.New("onboarding task not found")
	ErrInvalidTransition = errors.New("invalid task status transition")
)
