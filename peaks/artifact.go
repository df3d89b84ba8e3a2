// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Artifact is the on-disk peak file. Data holds one peak sequence per
// channel; this package always writes exactly one.
type Artifact struct {
	Data [][]float64 `json:"data"`
}

// NewArtifact wraps a single-channel peak sequence.
func NewArtifact(peaks []float64) Artifact {
	return Artifact{Data: [][]float64{peaks}}
}

// ArtifactName is the peak file name for an audio file: its base name with
// the extension replaced by ".json".
func ArtifactName(sourceFile string) string {
	base := filepath.Base(sourceFile)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

// Encode writes a as compact JSON without a trailing newline.
func Encode(w io.Writer, a Artifact) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encoding peaks: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing peaks: %w", err)
	}

	return nil
}

// WriteFile writes a to path through a temporary file in the same directory
// that is renamed into place, so readers never see a partial file.
func WriteFile(path string, a Artifact) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, a); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}

	return nil
}
