// Package config collects rasteredit's runtime settings from the
// environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ironsheep/rasteredit/internal/raster"
)

// Environment variables read by FromEnv.
const (
	EnvLogLevel    = "RASTEREDIT_LOG_LEVEL"
	EnvJPEGQuality = "RASTEREDIT_JPEG_QUALITY"
)

// Config holds settings shared by the CLI and the MCP server.
type Config struct {
	// Debug enables verbose logging to stderr.
	Debug bool

	// JPEGQuality is the quality (1-100) used when saving JPEG output.
	JPEGQuality int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{JPEGQuality: raster.DefaultJPEGQuality}
}

// LoadDotEnv loads variables from the named .env files (".env" when none
// are given) without overriding variables already set. A missing file is
// not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv builds a Config from the process environment.
func FromEnv() (Config, error) {
	cfg := Default()

	cfg.Debug = strings.EqualFold(os.Getenv(EnvLogLevel), "debug")

	if v := os.Getenv(EnvJPEGQuality); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			return cfg, fmt.Errorf("%s must be an integer between 1 and 100, got %q", EnvJPEGQuality, v)
		}
		cfg.JPEGQuality = q
	}

	return cfg, nil
}
