package logging

import (
	"fmt"
	"strings"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel string

const (
	// LogLevelDebug is for debug messages
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is for informational messages
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is for warning messages
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is for error messages
	LogLevelError LogLevel = "error"
)

const (
	// defaultMaxLogSize is the rotation threshold for the app log file
	defaultMaxLogSize = 10 * 1024 * 1024
	// defaultVerifyInterval is how often the rotating writer re-checks file identity
	defaultVerifyInterval = 30 * time.Second
)

var (
	// App is the global application logger
	App *AppLogger
	// Access is the global access logger
	Access AccessLogger
)

func init() {
	var err error

	// Default loggers: app log to stdout, access log discarded
	App, err = NewAppLogger("", LogLevelInfo, defaultMaxLogSize, defaultVerifyInterval)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize default app logger: %v", err))
	}

	Access, err = NewAccessLogger("")
	if err != nil {
		panic(fmt.Sprintf("failed to initialize default access logger: %v", err))
	}
}

// Initialize sets up the global loggers
func Initialize(accessLogPath, appLogPath string, level LogLevel) error {
	if level == "" {
		level = LogLevelInfo
	}

	newAccess, err := NewAccessLogger(accessLogPath)
	if err != nil {
		return fmt.Errorf("failed to initialize access logger: %w", err)
	}

	newApp, err := NewAppLogger(appLogPath, level, defaultMaxLogSize, defaultVerifyInterval)
	if err != nil {
		return fmt.Errorf("failed to initialize app logger: %w", err)
	}

	Access = newAccess
	App = newApp

	return nil
}

// MustInitialize initializes logging and panics on error
func MustInitialize(accessLogPath, appLogPath string, level LogLevel) {
	if err := Initialize(accessLogPath, appLogPath, level); err != nil {
		panic(fmt.Sprintf("failed to initialize logging: %v", err))
	}
}

// formatValue formats a value for logfmt, quoting if necessary
func formatValue(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	// Quote if contains space, equals, or quotes
	if strings.ContainsAny(s, " =\"") {
		// Escape existing quotes
		s = strings.ReplaceAll(s, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", s)
	}
	return s
}
