package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the daemon configuration
type Config struct {
	// Core server settings
	ListenAddr string `json:"listen_addr"`
	Port       int    `json:"port"`

	// Directory settings
	DataDir   string `json:"data_dir"`             // Where persisted state files live
	StatusDir string `json:"status_dir,omitempty"` // Optional: status file directory

	// Simulated service latency in milliseconds
	AuthLatencyMs  int `json:"auth_latency_ms"`
	FetchLatencyMs int `json:"fetch_latency_ms"`

	// Rate limit for the credential endpoints
	AuthRatePerMinute int `json:"auth_rate_per_minute"`
	AuthBurst         int `json:"auth_burst"`

	// Status heartbeat interval in seconds
	StatusInterval int `json:"status_interval"`

	// Logging settings
	AccessLogPath string `json:"access_log_path,omitempty"` // Optional: path to access log file
	AppLogPath    string `json:"app_log_path,omitempty"`    // Optional: path to app log file
	LogLevel      string `json:"log_level,omitempty"`       // debug, info, warn, error
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	// Convert relative paths to absolute paths based on config file location
	configDir := filepath.Dir(path)
	if config.DataDir != "" && !filepath.IsAbs(config.DataDir) {
		config.DataDir = filepath.Join(configDir, config.DataDir)
	}
	if config.StatusDir != "" && !filepath.IsAbs(config.StatusDir) {
		config.StatusDir = filepath.Join(configDir, config.StatusDir)
	}
	if config.AccessLogPath != "" && !filepath.IsAbs(config.AccessLogPath) {
		config.AccessLogPath = filepath.Join(configDir, config.AccessLogPath)
	}
	if config.AppLogPath != "" && !filepath.IsAbs(config.AppLogPath) {
		config.AppLogPath = filepath.Join(configDir, config.AppLogPath)
	}

	// Set defaults for optional settings
	if config.Port == 0 {
		config.Port = 8080
	}
	if config.DataDir == "" {
		config.DataDir = filepath.Join(configDir, "data")
	}
	if config.AuthLatencyMs == 0 {
		config.AuthLatencyMs = 1000
	}
	if config.FetchLatencyMs == 0 {
		config.FetchLatencyMs = 500
	}
	if config.AuthRatePerMinute == 0 {
		config.AuthRatePerMinute = 10
	}
	if config.AuthBurst == 0 {
		config.AuthBurst = 5
	}
	if config.StatusInterval == 0 {
		config.StatusInterval = 60
	}

	return nil
}
