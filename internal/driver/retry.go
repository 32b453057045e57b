package driver

import (
	"math"
	"time"
)

// RetryConfig defines reconnect delay behavior. Receivers drop idle
// control sessions routinely, so the stock profile retries forever at a
// fixed interval (multiplier 1.0).
type RetryConfig struct {
	Interval   time.Duration
	Multiplier float64
	MaxDelay   time.Duration
}

// NextRetryDelay returns the reconnect delay for attempt N (1-based).
func NextRetryDelay(cfg RetryConfig, attempt int) time.Duration {
	if attempt <= 1 || cfg.Multiplier <= 1.0 {
		return cfg.Interval
	}
	delay := float64(cfg.Interval) * math.Pow(cfg.Multiplier, float64(attempt-1))
	if cfg.MaxDelay > 0 && delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	return time.Duration(delay)
}
