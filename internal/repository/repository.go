package repository

import "errors"

var (
	// ErrDuplicateGroupName is returned when a group insert hits the
	// unique constraint on group_name.
	ErrDuplicateGroupName = errors.New("group name already exists")

	// ErrUserNotFound is returned when an update or delete by id
	// affects zero rows.
	ErrUserNotFound = errors.New("user not found")
)
