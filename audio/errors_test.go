// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{ErrUnsupportedFormat, ErrInvalidSampleRate} {
		wrapped := fmt.Errorf("song.xyz: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is() failed for wrapped %v", sentinel)
		}
	}

	if errors.Is(ErrUnsupportedFormat, ErrInvalidSampleRate) {
		t.Error("distinct sentinels compare equal")
	}
}

func TestRegistry_ForPathError(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().ForPath("cover.png")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ForPath() error = %v, want ErrUnsupportedFormat", err)
	}
}
