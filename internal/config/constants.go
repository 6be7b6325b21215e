// Path: internal/config/constants.go
package config

import "time"

const (
	DefaultConfigFile = "config/.env"
	DefaultAPIHost    = "127.0.0.1"
	DefaultPort       = 5000
	DefaultTaskQueue  = "instructor"
	DefaultLogLevel   = "info"
)

const (
	// Server configuration defaults
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultClientTimeout bounds every call to the LMS.
	DefaultClientTimeout = 30 * time.Second

	// DefaultTaskRetention keeps finished queue tasks readable for status checks.
	DefaultTaskRetention = 24 * time.Hour
)
