package notification

import "errors"

var (
	ErrTaskNotFound   = errors.New("queued task not found")
	ErrUndefinedTask  = errors.New("undefined task key")
	ErrInvalidPayload = errors.New("invalid task payload")
)
