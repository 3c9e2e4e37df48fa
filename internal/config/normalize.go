// internal/config/normalize.go
package config

import (
	"net"

	"github.com/tamzrod/viewmarq/internal/registers"
)

// Defaults applied by Normalize.
const (
	DefaultTimeoutMs  = 1000
	DefaultRetryMs    = 500
	DefaultLogLevel   = "info"
	DefaultMaxSizeMB  = 1
	DefaultMaxBackups = 2
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	s := &cfg.Sign

	// Endpoint without port => Modbus TCP default
	if _, _, err := net.SplitHostPort(s.Endpoint); err != nil {
		s.Endpoint = net.JoinHostPort(s.Endpoint, registers.DefaultPort)
	}

	if s.TimeoutMs == 0 {
		s.TimeoutMs = DefaultTimeoutMs
	}
	if s.RetryMs == 0 {
		s.RetryMs = DefaultRetryMs
	}
	if s.TestPattern == "" {
		s.TestPattern = "none"
	}

	l := &cfg.Log
	if l.Level == "" {
		l.Level = DefaultLogLevel
	}
	if l.MaxSizeMB == 0 {
		l.MaxSizeMB = DefaultMaxSizeMB
	}
	if l.MaxBackups == 0 {
		l.MaxBackups = DefaultMaxBackups
	}
}
