package utils

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyExists     = errors.New("email already registered")
	ErrPrimaryEmailRequired   = errors.New("primary user's email is required for family accounts")
	ErrPrimaryAccountNotFound = errors.New("primary user account not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrRecordNotFound         = errors.New("record not found")
	ErrNotOwner               = errors.New("record belongs to another account")
	ErrNoContactNumber        = errors.New("no family contact number set up")
	ErrNotificationFailed     = errors.New("notification delivery failed")
	ErrEmptyMessage           = errors.New("message is required")
	ErrEmptyQuery             = errors.New("search query is required")
	ErrDatabaseError          = errors.New("database error")
	ErrUpstreamFailure        = errors.New("upstream service error")
)
