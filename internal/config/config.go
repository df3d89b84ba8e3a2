// SPDX-License-Identifier: EPL-2.0

// Package config loads genpeaks settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/audpeaks"
	"github.com/ik5/audpeaks/batch"
	"github.com/ik5/audpeaks/peaks"
)

// ErrInvalidConfig wraps every value Load or Validate rejects.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultExtensions are the file extensions processed when PEAKS_EXTENSIONS
// is unset.
var DefaultExtensions = []string{"mp3", "wav", "ogg", "oga", "flac", "aiff", "aif"}

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	AudioDir  string // PEAKS_AUDIO_DIR
	OutputDir string // PEAKS_OUTPUT_DIR, defaults to AudioDir/peaks

	PeakCount  int      // PEAKS_COUNT
	Workers    int      // PEAKS_WORKERS
	Extensions []string // PEAKS_EXTENSIONS, comma separated
	Progress   bool     // PEAKS_PROGRESS
	BufferSize int      // PEAKS_BUFFER_SIZE, mono samples per read
}

// Load reads configuration from environment variables with sane defaults.
// Values that are set but cannot be parsed are reported, never replaced by
// the default.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		AudioDir:   envStr("PEAKS_AUDIO_DIR", filepath.Join("static", "audio")),
		OutputDir:  envStr("PEAKS_OUTPUT_DIR", ""),
		PeakCount:  envInt("PEAKS_COUNT", peaks.DefaultCount, &errs),
		Workers:    envInt("PEAKS_WORKERS", 1, &errs),
		Extensions: envList("PEAKS_EXTENSIONS", DefaultExtensions),
		Progress:   envBool("PEAKS_PROGRESS", false, &errs),
		BufferSize: envInt("PEAKS_BUFFER_SIZE", audpeaks.DefaultBufSize, &errs),
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.AudioDir == "":
		return fmt.Errorf("%w: audio directory is empty", ErrInvalidConfig)
	case c.PeakCount < 1:
		return fmt.Errorf("%w: %w: got %d", ErrInvalidConfig, peaks.ErrInvalidPeakCount, c.PeakCount)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	case c.BufferSize < 1:
		return fmt.Errorf("%w: buffer size must be at least 1, got %d", ErrInvalidConfig, c.BufferSize)
	case len(c.Extensions) == 0:
		return fmt.Errorf("%w: no file extensions configured", ErrInvalidConfig)
	}

	return nil
}

// Batch converts c into the orchestrator's configuration.
func (c Config) Batch() batch.Config {
	return batch.Config{
		InputDir:   c.AudioDir,
		OutputDir:  c.OutputDir,
		PeakCount:  c.PeakCount,
		Extensions: c.Extensions,
		Workers:    c.Workers,
		Progress:   c.Progress,
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s=%q: %w", key, v, err))
		return fallback
	}
	return n
}

func envBool(key string, fallback bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s=%q: %w", key, v, err))
		return fallback
	}
	return b
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	return SplitList(v)
}

// SplitList splits a comma separated list, dropping blank items.
func SplitList(v string) []string {
	var items []string
	for item := range strings.SplitSeq(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
