package domain

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskNameTaken = errors.New("task name already taken")
	ErrTaskSettled   = errors.New("task already settled")
	ErrUserNotFound  = errors.New("user not found")
	ErrNoDuration    = errors.New("no duration component recognized")
)
