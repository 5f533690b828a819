package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	Names  NamesConfig  `yaml:"names" mapstructure:"names"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// InputConfig controls how the title/intro/body texts are read
type InputConfig struct {
	StripHTML     bool  `yaml:"strip_html" mapstructure:"strip_html"`           // Reduce HTML fields to visible text before scanning
	MaxFieldBytes int64 `yaml:"max_field_bytes" mapstructure:"max_field_bytes"` // Limit for --*-file inputs
}

// NamesConfig controls name list loading
type NamesConfig struct {
	MaxBytes      int64  `yaml:"max_bytes" mapstructure:"max_bytes"`
	CommentPrefix string `yaml:"comment_prefix" mapstructure:"comment_prefix"` // Empty disables comment skipping
}

// CacheConfig controls the in-process extraction memo
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format  string `yaml:"format" mapstructure:"format"` // table, json, markdown
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// LogConfig controls the diagnostic logger
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			StripHTML:     false,
			MaxFieldBytes: 1 << 20,
		},
		Names: NamesConfig{
			MaxBytes: 1 << 20,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
