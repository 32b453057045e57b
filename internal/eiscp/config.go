package eiscp

import "time"

// DefaultPort is the TCP port eISCP receivers listen on.
const DefaultPort = 60128

// Config defines transport reliability defaults for one client.
type Config struct {
	DialTimeout  time.Duration
	WriteTimeout time.Duration
}

// WithDefaults fills zero fields with working defaults.
func (c Config) WithDefaults() Config {
	if c.DialTimeout <= 0 {
		c.DialTimeout = 5 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 15 * time.Second
	}
	return c
}
