package domain

import "errors"

// Request validation
var ErrMissingFields = errors.New("missing fields")

// Account errors
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// Completion provider errors
var ErrCompletionFailed = errors.New("completion provider failed")
