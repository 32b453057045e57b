package driver

import (
	"time"

	"github.com/danmuck/avrctl/internal/eiscp"
)

// Config configures one receiver binding.
type Config struct {
	Name      string
	Host      string
	Port      int
	Transport eiscp.Config
	Retry     RetryConfig
}

// DefaultConfig returns the stock single-receiver profile.
func DefaultConfig() Config {
	return Config{
		Name: "avr.main",
		Port: eiscp.DefaultPort,
		Retry: RetryConfig{
			Interval:   10 * time.Second,
			Multiplier: 1.0,
		},
	}
}

// WithDefaults fills zero fields with the stock profile.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.Name == "" {
		c.Name = def.Name
	}
	if c.Port <= 0 {
		c.Port = def.Port
	}
	if c.Retry.Interval <= 0 {
		c.Retry.Interval = def.Retry.Interval
	}
	if c.Retry.Multiplier < 1.0 {
		c.Retry.Multiplier = def.Retry.Multiplier
	}
	return c
}
