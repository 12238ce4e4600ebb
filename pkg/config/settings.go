package config

import "time"

// Settings groups runtime tunables loaded from settings.yaml. Every field
// has a default so the file is optional.
type Settings struct {
	Queue     QueueSettings     `yaml:"queue"`
	Execution ExecutionSettings `yaml:"execution"`
	Retention RetentionSettings `yaml:"retention"`
}

// QueueSettings configures the worker pool.
type QueueSettings struct {
	// Number of concurrent job workers per process
	Workers int `yaml:"workers"`
	// Poll interval for claiming pending jobs
	ClaimInterval time.Duration `yaml:"claim_interval"`
	// Heartbeat write interval while a job runs
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
	// Grace period before a snapshot-less pending job is failed at startup
	OrphanGracePeriod time.Duration `yaml:"orphan_grace_period"`
	// Hard runtime cap enforced on status reads
	StaleJobCap time.Duration `yaml:"stale_job_cap"`
}

// ExecutionSettings configures the runners.
type ExecutionSettings struct {
	// Parallel phases within a dependency group
	PhaseParallelism int `yaml:"phase_parallelism"`
	// Parallel work units within a per-work phase
	WorkParallelism int `yaml:"work_parallelism"`
	// Default per-block cap for cross-phase context
	MaxContextChars int `yaml:"max_context_chars"`
	// Recent-job window scanned by the idempotency guard
	IdempotencyWindow int `yaml:"idempotency_window"`
}

// RetentionSettings configures the optional terminal-job sweep.
type RetentionSettings struct {
	Enabled       bool          `yaml:"enabled"`
	MaxAge        time.Duration `yaml:"max_age"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultSettings returns the settings used when settings.yaml is absent.
func DefaultSettings() *Settings {
	return &Settings{
		Queue: QueueSettings{
			Workers:           2,
			ClaimInterval:     3 * time.Second,
			HeartbeatInterval: 30 * time.Second,
			OrphanGracePeriod: 5 * time.Minute,
			StaleJobCap:       3 * time.Hour,
		},
		Execution: ExecutionSettings{
			PhaseParallelism:  2,
			WorkParallelism:   3,
			MaxContextChars:   50000,
			IdempotencyWindow: 5,
		},
		Retention: RetentionSettings{
			Enabled:       false,
			MaxAge:        30 * 24 * time.Hour,
			SweepInterval: time.Hour,
		},
	}
}

// applyDefaults fills zero values so a sparse settings.yaml works.
func (s *Settings) applyDefaults() {
	d := DefaultSettings()
	if s.Queue.Workers <= 0 {
		s.Queue.Workers = d.Queue.Workers
	}
	if s.Queue.ClaimInterval <= 0 {
		s.Queue.ClaimInterval = d.Queue.ClaimInterval
	}
	if s.Queue.HeartbeatInterval <= 0 {
		s.Queue.HeartbeatInterval = d.Queue.HeartbeatInterval
	}
	if s.Queue.OrphanGracePeriod <= 0 {
		s.Queue.OrphanGracePeriod = d.Queue.OrphanGracePeriod
	}
	if s.Queue.StaleJobCap <= 0 {
		s.Queue.StaleJobCap = d.Queue.StaleJobCap
	}
	if s.Execution.PhaseParallelism <= 0 {
		s.Execution.PhaseParallelism = d.Execution.PhaseParallelism
	}
	if s.Execution.WorkParallelism <= 0 {
		s.Execution.WorkParallelism = d.Execution.WorkParallelism
	}
	if s.Execution.MaxContextChars <= 0 {
		s.Execution.MaxContextChars = d.Execution.MaxContextChars
	}
	if s.Execution.IdempotencyWindow <= 0 {
		s.Execution.IdempotencyWindow = d.Execution.IdempotencyWindow
	}
	if s.Retention.MaxAge <= 0 {
		s.Retention.MaxAge = d.Retention.MaxAge
	}
	if s.Retention.SweepInterval <= 0 {
		s.Retention.SweepInterval = d.Retention.SweepInterval
	}
}
