// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ik5/audpeaks/peaks"
)

// Config drives one batch run.
type Config struct {
	// InputDir is scanned, non-recursively, for audio files.
	InputDir string
	// OutputDir receives one peak file per input. Defaults to InputDir/peaks.
	OutputDir string
	// PeakCount is the number of peaks per file.
	PeakCount int
	// Extensions lists the accepted file extensions, matched case-insensitively.
	Extensions []string
	// Workers bounds how many files are processed at once. 0 means 1.
	Workers int

	// Progress enables a progress bar written to ProgressOutput.
	Progress       bool
	ProgressOutput io.Writer
}

// Validate reports the first configuration problem, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input directory is empty", ErrInvalidConfig)
	}
	if c.PeakCount < 1 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidConfig, peaks.ErrInvalidPeakCount, c.PeakCount)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: no file extensions configured", ErrInvalidConfig)
	}
	for _, ext := range c.Extensions {
		if normalizeExt(ext) == "" {
			return fmt.Errorf("%w: empty file extension", ErrInvalidConfig)
		}
	}

	return nil
}

func (c Config) withDefaults() Config {
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.InputDir, "peaks")
	}
	if c.Workers == 0 {
		c.Workers = 1
	}

	return c
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
