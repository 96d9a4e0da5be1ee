package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the daemon
type Config struct {
	API       APIConfig
	Reference ReferenceConfig
	Report    ReportConfig
	Geo       GeoConfig
	Log       LogConfig
}

// APIConfig holds adsb.one client settings
type APIConfig struct {
	BaseURL        string
	PollInterval   int // seconds between scan cycles
	RequestTimeout int // seconds
}

// ReferenceConfig selects the reference table source
type ReferenceConfig struct {
	CSVPath string // empty selects the builtin table
}

// ReportConfig holds presenter settings
type ReportConfig struct {
	ShowUnmatched bool
}

// GeoConfig holds reverse-geocoding settings
type GeoConfig struct {
	Enabled bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from config file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("api.base_url", "https://api.adsb.one")
	v.SetDefault("api.poll_interval", 1)
	v.SetDefault("api.request_timeout", 30)
	v.SetDefault("reference.csv_path", "")
	v.SetDefault("report.show_unmatched", false)
	v.SetDefault("geo.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Set config file name and type
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Set config file search paths
	v.AddConfigPath("/etc/vipwatch")
	v.AddConfigPath(".")

	// Check for config file path from environment variable
	// (the -config flag sets this before Load is called)
	if configPath := os.Getenv("VIPWATCH_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Read config file (if it exists)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error occurred
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK - we'll use defaults + env vars
		// Don't log here since logger isn't initialized yet
	}

	// Set environment variable prefix
	v.SetEnvPrefix("VIPWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Build config struct
	cfg := &Config{
		API: APIConfig{
			BaseURL:        v.GetString("api.base_url"),
			PollInterval:   v.GetInt("api.poll_interval"),
			RequestTimeout: v.GetInt("api.request_timeout"),
		},
		Reference: ReferenceConfig{
			CSVPath: v.GetString("reference.csv_path"),
		},
		Report: ReportConfig{
			ShowUnmatched: v.GetBool("report.show_unmatched"),
		},
		Geo: GeoConfig{
			Enabled: v.GetBool("geo.enabled"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	// The aggregator allows one request per second; never poll faster
	if cfg.API.PollInterval < 1 {
		return fmt.Errorf("api.poll_interval must be at least 1 second")
	}

	if cfg.API.RequestTimeout <= 0 {
		return fmt.Errorf("api.request_timeout must be greater than 0")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}
