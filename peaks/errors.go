// SPDX-License-Identifier: EPL-2.0

package peaks

import "errors"

var (
	// ErrInvalidPeakCount is returned when fewer than one peak is requested.
	ErrInvalidPeakCount = errors.New("peak count must be at least 1")
)
