// SPDX-License-Identifier: EPL-2.0

// Package config loads wavkit settings from the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvFFmpeg     = "WAVKIT_FFMPEG"
	EnvVerbose    = "WAVKIT_VERBOSE"
	EnvLogFile    = "WAVKIT_LOG_FILE"
	EnvSampleRate = "WAVKIT_SAMPLE_RATE"
	EnvBackend    = "WAVKIT_BACKEND"
)

// Conversion backends.
const (
	BackendFFmpeg = "ffmpeg"
	BackendNative = "native"
)

// DefaultSampleRate is the output rate of conversions unless configured.
const DefaultSampleRate = 8000

var ErrInvalidValue = errors.New("invalid configuration value")

type Config struct {
	FFmpeg     string // ffmpeg executable, looked up in PATH when not absolute
	Verbose    bool
	LogFile    string // empty logs to stderr
	SampleRate int
	Backend    string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		FFmpeg:     "ffmpeg",
		SampleRate: DefaultSampleRate,
		Backend:    BackendFFmpeg,
	}
}

// Load reads envFiles (".env" when none are given) into the process
// environment and builds a Config from it. Files that do not exist are
// skipped and variables already set win over file contents.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, name := range envFiles {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", name, err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvFFmpeg); v != "" {
		cfg.FFmpeg = v
	}

	cfg.LogFile = os.Getenv(EnvLogFile)

	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvVerbose, v)
		}
		cfg.Verbose = b
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSampleRate, v)
		}
		cfg.SampleRate = rate
	}

	if v := os.Getenv(EnvBackend); v != "" {
		switch b := strings.ToLower(v); b {
		case BackendFFmpeg, BackendNative:
			cfg.Backend = b
		default:
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvBackend, v)
		}
	}

	return cfg, nil
}
