// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	AccountSID    string
	AuthToken     string
	UploadsDir    string
	ExportsDir    string
	ErrorMapPath  string
	DatabasePath  string
	AppLogPath    string
	APIBase       string
	TrustHubBase  string
	MessagingBase string
	HTTPTimeout   time.Duration
	PageLimit     int
}

// Default values
const (
	defaultAPIBase       = "https://api.twilio.com"
	defaultTrustHubBase  = "https://trusthub.twilio.com"
	defaultMessagingBase = "https://messaging.twilio.com"
	defaultHTTPTimeout   = 30 * time.Second
	defaultPageLimit     = 200
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		AccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:     os.Getenv("TWILIO_AUTH_TOKEN"),
		UploadsDir:    getEnvString("UPLOADS_DIR", defaultDataPath("uploads")),
		ExportsDir:    getEnvString("EXPORTS_DIR", defaultDataPath("exports")),
		ErrorMapPath:  getEnvString("ERROR_MAP_PATH", defaultDataPath("twilio_error_map.json")),
		DatabasePath:  getEnvString("DATABASE_PATH", defaultDataPath("audit.db")),
		AppLogPath:    getEnvString("APP_LOG_PATH", defaultDataPath(filepath.Join("applogs", "app.log"))),
		APIBase:       getEnvString("TWILIO_API_BASE", defaultAPIBase),
		TrustHubBase:  getEnvString("TWILIO_TRUSTHUB_BASE", defaultTrustHubBase),
		MessagingBase: getEnvString("TWILIO_MESSAGING_BASE", defaultMessagingBase),
		HTTPTimeout:   getEnvDuration("HTTP_TIMEOUT", defaultHTTPTimeout),
		PageLimit:     getEnvInt("PAGE_LIMIT", defaultPageLimit),
	}

	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil, fmt.Errorf(
			"TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN are required (set via env or a .env file)")
	}

	for _, dir := range []string{cfg.UploadsDir, cfg.ExportsDir, filepath.Dir(cfg.DatabasePath)} {
		if err := ensureDir(dir); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "twilio-tools", ".env"),
			filepath.Join(home, ".twilio-tools", ".env"),
		)
	}

	// Parent directory (useful for development)
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(cwd), ".env"))
	}

	return paths
}

// defaultDataPath returns a path under the application data directory.
func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".config", "twilio-tools", name)
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms", or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
