package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG    PGConfig
	Local LocalConfig
}

// PGConfig configures postgres connectivity
type PGConfig struct {
	Enabled  bool
	URL      string
	MaxConns int32

	// Guard/boot knobs:
	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// LocalConfig configures the file backed state store
type LocalConfig struct {
	Enabled bool
	Path    string
}
