package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "mibigtaxa"

	// CacheFileName is the name of the default taxon cache file.
	CacheFileName = "taxa.cache"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/mibigtaxa by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/mibigtaxa by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/mibigtaxa/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/mibigtaxa/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CacheFilePath returns the default path of the taxon cache.
// Returns ~/.cache/mibigtaxa/taxa.cache by default.
func CacheFilePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), CacheFileName)
}
