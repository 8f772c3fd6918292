package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for attctl.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Serial  SerialConfig  `yaml:"serial"`
	Logging LoggingConfig `yaml:"logging"`
}

// SerialConfig contains the serial transport settings shared by every
// discovered instrument.
type SerialConfig struct {
	// Match is the substring that marks an enumerated interface as a
	// target ACM device (e.g. "ACM" matches /dev/ttyACM0, /dev/ttyACM1).
	Match string `yaml:"match"`

	// BaudRate is the line speed used when opening a port.
	BaudRate int `yaml:"baud_rate"`

	// TimeoutMs is the per-query response timeout in milliseconds.
	TimeoutMs int `yaml:"timeout_ms"`

	// LineTermination is the sequence terminating every command and
	// every instrument response line.
	LineTermination string `yaml:"line_termination"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string            `yaml:"level"`
	Format string            `yaml:"format"`
	Output string            `yaml:"output"`
	File   FileLoggingConfig `yaml:"file"`
}

// FileLoggingConfig contains file-based logging settings.
// Used when LoggingConfig.Output is "file"; rotation is handled by lumberjack.
type FileLoggingConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// An empty path skips the file stage entirely and yields the defaults plus
// environment overrides. Environment variables follow the pattern
// ATTCTL_SECTION_KEY, for example: ATTCTL_SERIAL_MATCH, ATTCTL_LOG_LEVEL.
//
// Parameters:
//   - path: Path to the YAML configuration file, or "" for defaults
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
// Serial defaults match the factory settings of the supported attenuators.
func defaultConfig() *Config {
	return &Config{
		Serial: SerialConfig{
			Match:           "ACM",
			BaudRate:        115200,
			TimeoutMs:       1000,
			LineTermination: "\r\n",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
			File: FileLoggingConfig{
				Path:       "./logs/attctl.log",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: ATTCTL_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Serial
	if v := os.Getenv("ATTCTL_SERIAL_MATCH"); v != "" {
		cfg.Serial.Match = v
	}
	if v := os.Getenv("ATTCTL_SERIAL_BAUD_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Serial.BaudRate = n
		}
	}
	if v := os.Getenv("ATTCTL_SERIAL_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Serial.TimeoutMs = n
		}
	}

	// Logging
	if v := os.Getenv("ATTCTL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ATTCTL_LOG_OUTPUT"); v != "" {
		cfg.Logging.Output = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Serial validation
	if c.Serial.Match == "" {
		errs = append(errs, "serial.match is required")
	}
	if c.Serial.BaudRate <= 0 {
		errs = append(errs, "serial.baud_rate must be positive")
	}
	if c.Serial.TimeoutMs <= 0 {
		errs = append(errs, "serial.timeout_ms must be positive")
	}
	if c.Serial.LineTermination == "" {
		errs = append(errs, "serial.line_termination is required")
	}

	// Logging validation
	switch strings.ToLower(c.Logging.Output) {
	case "stdout", "stderr":
	case "file":
		if c.Logging.File.Path == "" {
			errs = append(errs, "logging.file.path is required when logging.output is \"file\"")
		}
	default:
		errs = append(errs, "logging.output must be stdout, stderr, or file")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// QueryTimeout returns the per-query response timeout as a Duration.
func (c *SerialConfig) QueryTimeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
