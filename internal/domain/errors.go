package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidWorkHours = errors.New("work hours must be HH:MM-HH:MM or the round-the-clock literal")
	ErrBadCredentials   = errors.New("invalid credentials")
	ErrAdminExists      = errors.New("admin already exists")
)
