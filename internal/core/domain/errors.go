package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectExists   = errors.New("project already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrForbidden          = errors.New("access forbidden")

	ErrInvalidRole     = errors.New("invalid role")
	ErrUnknownAssignee = errors.New("one or more assigned users do not exist")
	ErrNothingToUpdate = errors.New("at least one field must be provided")
)
