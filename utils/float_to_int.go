// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 maps a sample in [-1,1] to signed 16-bit PCM.
//
// The scale is 32768, the inverse of the decoders' normalization, so 16-bit
// input survives the round trip unchanged. Out of range values are clamped.
func Float32ToInt16(x float32) int16 {
	v := x * 32768.0
	if v >= math.MaxInt16 {
		return math.MaxInt16
	}
	if v <= math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}
