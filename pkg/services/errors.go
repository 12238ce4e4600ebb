package services

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidCancelToken indicates a cancel request with a wrong token
	ErrInvalidCancelToken = errors.New("invalid cancel token")

	// ErrNotTerminal indicates an operation that requires a terminal job status
	ErrNotTerminal = errors.New("job is not in a terminal state")

	// ErrTerminal indicates a status transition attempted on a terminal job
	ErrTerminal = errors.New("job already reached a terminal state")
)
