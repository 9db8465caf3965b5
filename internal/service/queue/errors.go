package queue

import "errors"

var (
	ErrInvalidTaskKey = errors.New("invalid task key")
	ErrInvalidPayload = errors.New("invalid task payload")
	ErrInvalidBatch   = errors.New("invalid relay batch size")
)
