package store

import "time"

// Config gathers per backend settings
type Config struct {
	AppName string

	PG PGConfig
}

// PGConfig holds postgres connectivity and tracing settings
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot knobs
	ConnectRetries int           // default 6, roughly a minute with backoff
	PingTimeout    time.Duration // default 5s
}
