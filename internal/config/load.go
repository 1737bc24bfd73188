package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.taskline/taskline.toml or OS-specific config dir)
// 3. Project config file (taskline.toml or .taskline.toml in current directory)
// 4. Environment variables
// 5. CLI flags registered on fs
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Override from CLI flags
	registerFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// registerFlags binds the global flags directly onto the config, using the
// already-merged values as defaults so unset flags change nothing.
func registerFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.SnapshotFile, "file", cfg.SnapshotFile, "Snapshot file path")
	fs.BoolVar(&cfg.Notifications, "notifications", cfg.Notifications, "Enable desktop notifications")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|logfmt|json)")
}

// loadConfigFile loads configuration from a TOML file into cfg.
func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// findUserConfigFile returns the path of the user-level config file, or
// empty if none exists.
func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	candidates := []string{
		filepath.Join(home, ".taskline", "taskline.toml"),
	}
	if dir := osConfigDir(home); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "taskline", "taskline.toml"))
	}

	for _, path := range candidates {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// findProjectConfigFile returns the path of the project-level config file
// in the current directory, or empty if none exists.
func findProjectConfigFile() string {
	for _, name := range []string{"taskline.toml", ".taskline.toml"} {
		if fileExists(name) {
			return name
		}
	}
	return ""
}

// osConfigDir returns the OS-specific user configuration directory.
func osConfigDir(home string) string {
	switch runtime.GOOS {
	case "windows":
		return os.Getenv("APPDATA")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		return filepath.Join(home, ".config")
	}
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
