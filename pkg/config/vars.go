package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gntraits"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gntraits by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gntraits by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// QueryCacheDir returns the directory holding the BacDive response cache.
func QueryCacheDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "bacdive")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gntraits/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gntraits/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
