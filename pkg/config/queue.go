package config

import "time"

// QueueConfig contains the reclamation-sweep worker's polling
// configuration: a poll interval plus jitter to avoid replicas
// synchronizing their sweeps.
type QueueConfig struct {
	// SweepWorkerCount is the number of goroutines running the reclamation
	// sweep loop; a single reclamation worker is sufficient, so this
	// defaults to 1 and isn't expected to be raised in normal operation.
	SweepWorkerCount int `yaml:"sweep_worker_count"`

	// PollInterval is the base interval between reclamation sweep passes.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// GracefulShutdownTimeout bounds how long Stop() waits for an in-flight
	// sweep to finish before returning.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		SweepWorkerCount:        1,
		PollInterval:            1 * time.Minute,
		PollIntervalJitter:      10 * time.Second,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
