package queue

import "errors"

var (
	// ErrNoJobsAvailable indicates no pending jobs were found to claim
	ErrNoJobsAvailable = errors.New("no pending jobs available")

	// ErrAtCapacity indicates the pool reached its concurrent-job ceiling
	ErrAtCapacity = errors.New("at maximum concurrent jobs")
)
