// Package config provides configuration management for mibigtaxa.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - CacheFile
//   - Build: taxdump, merged_dump, data_dir, with_progress
//   - Output: format
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use MIBIGTAXA_ prefix with underscores for nesting:
//
//	MIBIGTAXA_CACHE_FILE=/data/taxa.cache
//	MIBIGTAXA_BUILD_TAXDUMP=/data/new_taxdump/rankedlineage.dmp
//	MIBIGTAXA_LOG_LEVEL=info
//	MIBIGTAXA_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete mibigtaxa configuration.
type Config struct {
	// CacheFile is the location of the serialized taxon cache.
	// Empty value means the default location in the cache directory.
	CacheFile string `mapstructure:"cache_file" yaml:"cache_file"`

	// Build contains settings for creating the cache from NCBI dumps.
	Build BuildConfig `mapstructure:"build" yaml:"build"`

	// Output contains settings for printing query results.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// BuildConfig points to the sources of the taxon cache.
type BuildConfig struct {
	// Taxdump is the path to rankedlineage.dmp of the NCBI new_taxdump,
	// or to a directory that contains it.
	Taxdump string `mapstructure:"taxdump" yaml:"taxdump"`

	// MergedDump is the path to merged.dmp, or to a directory that
	// contains it.
	MergedDump string `mapstructure:"merged_dump" yaml:"merged_dump"`

	// DataDir is a directory with MIBiG JSON entries. Only taxonomy IDs
	// referenced by the entries are kept in the cache. If the directory
	// has no JSON files, the whole taxonomy is kept.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// WithProgress shows progress bars while reading dump files.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`
}

// OutputConfig sets how query results are printed.
type OutputConfig struct {
	// Format can be 'text', 'json' or 'yaml'.
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Output: OutputConfig{
			Format: "text",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}

// CachePath returns the location of the cache file.
func (c *Config) CachePath() string {
	if c.CacheFile != "" {
		return c.CacheFile
	}
	return CacheFilePath(c.HomeDir)
}
