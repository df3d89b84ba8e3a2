// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	// ErrInvalidConfig wraps every configuration problem found by Config.Validate.
	ErrInvalidConfig = errors.New("invalid batch configuration")

	// ErrInputDir is returned when the input directory cannot be listed.
	ErrInputDir = errors.New("cannot read input directory")

	// ErrDecode marks a file the decoder could not turn into samples.
	ErrDecode = errors.New("decode failed")

	// ErrWrite marks a peak file that could not be written.
	ErrWrite = errors.New("write failed")

	// ErrArtifactCollision marks a file whose peak file name is already
	// taken by an earlier file of the batch (e.g. intro.mp3 and intro.wav).
	ErrArtifactCollision = errors.New("peak file name already used by another input")
)
