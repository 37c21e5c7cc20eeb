package main

import (
	"os"
	"strconv"
	"strings"
)

// Demo parameter defaults, matching the reference outputs.
const (
	defaultBrightnessDelta = 50
	defaultContrastFactor  = 1.5
	defaultLogFile         = "pixproc.log"
	defaultOutputDir       = "."
)

// Config holds the driver's environment-derived settings. Transform inputs
// and pipeline files come from flags; everything ambient comes from here.
type Config struct {
	// DevMode switches the logger to colored, debug-level console output.
	DevMode bool

	// LogFile is the rotating log file path.
	LogFile string

	// OutputDir receives every pixmap the demo writes.
	OutputDir string

	// BrightnessDelta and ContrastFactor parameterize the demo's adjustment
	// steps.
	BrightnessDelta int
	ContrastFactor  float64
}

// LoadConfig reads the driver configuration from the environment.
// Every setting has a default; a missing or malformed variable never fails.
func LoadConfig() *Config {
	return &Config{
		DevMode:         parseBoolEnv("DEV_MODE", false),
		LogFile:         getEnvOrDefault("LOG_FILE", defaultLogFile),
		OutputDir:       getEnvOrDefault("OUTPUT_DIR", defaultOutputDir),
		BrightnessDelta: parseIntEnv("DEMO_BRIGHTNESS_DELTA", defaultBrightnessDelta),
		ContrastFactor:  parseFloatEnv("DEMO_CONTRAST_FACTOR", defaultContrastFactor),
	}
}

// getEnvOrDefault returns the variable's value, or the default when unset.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntEnv parses the variable as an integer, falling back on the default
// when unset or malformed.
func parseIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}

// parseFloatEnv parses the variable as a float64, falling back on the default
// when unset or malformed.
func parseFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

// parseBoolEnv parses the variable as a boolean. Accepts true/1/yes/on and
// false/0/no/off, case-insensitive.
func parseBoolEnv(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
