package config

import "time"

const (
	sessionExpiryEnvVar = "SESSION_EXPIRY"
	sweepIntervalEnvVar = "SESSION_SWEEP_INTERVAL"

	defaultSessionExpiry = 1 * time.Hour
	defaultSweepInterval = 10 * time.Minute
)

type SessionConfig interface {
	GetSessionExpiry() time.Duration
	GetSweepInterval() time.Duration
}

type Sessions struct{}

var _ SessionConfig = Sessions{}

// GetSessionExpiry is measured from session creation, not last activity.
func (Sessions) GetSessionExpiry() time.Duration {
	return GetDurationEnv(sessionExpiryEnvVar, defaultSessionExpiry)
}

func (Sessions) GetSweepInterval() time.Duration {
	return GetDurationEnv(sweepIntervalEnvVar, defaultSweepInterval)
}
