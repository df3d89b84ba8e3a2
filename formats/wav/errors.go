// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout: only integer PCM is supported")
	ErrUnsupportedBitDepth  = errors.New("unsupported WAV bit depth: want 16, 24 or 32")
)
