package queue

import (
	"context"
	"sync"
)

// CancelRegistry is the process-local hot path of cancellation: a mutex
// map of job id → cancellation state. The persisted status is the cold
// path; the worker's heartbeat loop folds it back into the local flag so
// cross-process cancel requests land within one heartbeat interval.
type CancelRegistry struct {
	mu   sync.RWMutex
	jobs map[string]*cancelEntry
}

type cancelEntry struct {
	cancelled bool
	cancel    context.CancelFunc
}

// NewCancelRegistry creates an empty registry
func NewCancelRegistry() *CancelRegistry {
	return &CancelRegistry{jobs: make(map[string]*cancelEntry)}
}

// Register stores the job's context cancel function for API-triggered
// cancellation.
func (r *CancelRegistry) Register(jobID string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[jobID] = &cancelEntry{cancel: cancel}
}

// Unregister removes the job when processing ends.
func (r *CancelRegistry) Unregister(jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, jobID)
}

// Cancel flips the job's flag and fires its context cancel function.
// Returns true when the job was running on this process.
func (r *CancelRegistry) Cancel(jobID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.jobs[jobID]
	if !ok {
		return false
	}
	entry.cancelled = true
	if entry.cancel != nil {
		entry.cancel()
	}
	return true
}

// MarkCancelled flips the flag without firing the context cancel — used by
// the heartbeat loop when the persisted status says cancelled.
func (r *CancelRegistry) MarkCancelled(jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.jobs[jobID]; ok {
		entry.cancelled = true
	} else {
		r.jobs[jobID] = &cancelEntry{cancelled: true}
	}
}

// IsCancelled reports the local flag.
func (r *CancelRegistry) IsCancelled(jobID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.jobs[jobID]
	return ok && entry.cancelled
}

// CheckFunc returns the cancellation poller handed to the LLM client and
// runners for one job.
func (r *CancelRegistry) CheckFunc(jobID string) func() bool {
	return func() bool { return r.IsCancelled(jobID) }
}
