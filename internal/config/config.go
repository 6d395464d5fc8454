package config

import (
	"os"
	"strconv"

	"github.com/iangfernandes96/combiner/internal/combine"
	"github.com/iangfernandes96/combiner/internal/ir"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DefaultEnvFile is read by Load when no other file is named.
const DefaultEnvFile = ".env"

// Config holds defaults for the combiner commands. Command-line flags
// override every field.
type Config struct {
	MaxBytes    int    // ceiling on interleaved data; 0 disables
	Pad         string // "tail" or "alpha"
	Filter      string // resampling filter name
	JPEGQuality int
	LogDir      string
	Verbose     bool
}

// Load reads envFile (if it exists) into the environment and builds a
// Config from COMBINER_* variables. Variables already set in the
// environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "loading %s", envFile)
		}
	}

	cfg := &Config{
		MaxBytes:    getEnvAsInt("COMBINER_MAX_BYTES", ir.DefaultCapacity),
		Pad:         getEnv("COMBINER_PAD", "tail"),
		Filter:      getEnv("COMBINER_FILTER", combine.DefaultFilter),
		JPEGQuality: getEnvAsInt("COMBINER_JPEG_QUALITY", 90),
		LogDir:      getEnv("COMBINER_LOG_DIR", ""),
		Verbose:     getEnvAsBool("COMBINER_VERBOSE", false),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.MaxBytes < 0 {
		return errors.Errorf("max bytes must not be negative, got %d", c.MaxBytes)
	}
	if _, err := ir.ParsePadMode(c.Pad); err != nil {
		return err
	}
	if _, err := combine.ParseFilter(c.Filter); err != nil {
		return err
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return errors.Errorf("JPEG quality must be 1-100, got %d", c.JPEGQuality)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
