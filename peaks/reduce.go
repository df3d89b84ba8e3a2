// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"
	"math"
)

// DefaultCount is the number of peaks rendered per track.
const DefaultCount = 200

// fullScale maps a signed 16-bit magnitude to [0,1].
const fullScale = 32768.0

// Reduce splits samples into n chunks of floor(len/n) samples (at least one)
// and returns the largest absolute amplitude of each chunk, normalized to
// [0,1] and rounded to 4 decimal places.
//
// The result always has exactly n values. Chunks that start past the end of
// samples, which happens when there are fewer samples than peaks, are 0.
// Samples left over after n full chunks are not visited.
func Reduce(samples []int16, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPeakCount, n)
	}

	total := len(samples)
	chunkSize := max(1, total/n)

	out := make([]float64, n)
	for i := range out {
		start := i * chunkSize
		if start >= total {
			break
		}
		end := min(start+chunkSize, total)

		out[i] = Round4(float64(maxAbs(samples[start:end])) / fullScale)
	}

	return out, nil
}

func maxAbs(chunk []int16) int32 {
	var peak int32
	for _, s := range chunk {
		v := int32(s)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}

	return peak
}

// Round4 rounds v to 4 decimal places, ties to even.
func Round4(v float64) float64 {
	return math.RoundToEven(v*1e4) / 1e4
}
