// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrMalformedStream is returned when the Ogg or Vorbis parser gives up on
// corrupt input.
var ErrMalformedStream = errors.New("malformed ogg vorbis stream")
