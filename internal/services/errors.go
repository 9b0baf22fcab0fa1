package services

import "errors"

// Business failures are recoverable at the call site. Lookups that miss and
// malformed input surface as errors; preconditions that simply don't hold
// (full hackathon, MVP not accepting funding) surface as boolean outcomes.
var (
	ErrHackathonNotFound = errors.New("hackathon not found")
	ErrMVPNotFound       = errors.New("mvp not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidTransition = errors.New("illegal status transition")
)
