package entity

import "errors"

var (
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidTitle     = errors.New("task title must be a non-empty string")
	ErrInvalidStatus    = errors.New("status must be pending or done")
	ErrTaskReadBack     = errors.New("task not found after write")
)
