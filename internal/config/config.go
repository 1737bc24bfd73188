package config

// Default values.
const (
	DefaultSnapshotFile = "tasks.json"
	DefaultAppName      = "Taskline"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Config holds the full configuration for taskline.
type Config struct {
	// Paths
	SnapshotFile string `toml:"snapshot_file"`

	// Notifications
	AppName       string `toml:"app_name"`
	Notifications bool   `toml:"notifications"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

func setDefaults(cfg *Config) {
	cfg.SnapshotFile = DefaultSnapshotFile
	cfg.AppName = DefaultAppName
	cfg.Notifications = true
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
}
