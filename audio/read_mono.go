// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audpeaks/utils"
)

const (
	defaultBufSize = 4096

	// maxEmptyReads bounds how many (0, nil) reads are tolerated before the
	// source is considered stuck.
	maxEmptyReads = 100
)

// ReadMono16 drains src, downmixes it to mono and returns the whole stream as
// 16-bit PCM together with its duration.
//
// bufSize is the number of mono samples requested per read. When it is not
// positive the source's own BufSize is used.
//
// A source that ends without producing any samples yields an empty Track and
// a nil error; only read failures are reported as errors.
func ReadMono16(src Source, bufSize int) (Track, error) {
	rate := src.SampleRate()
	if rate <= 0 {
		return Track{}, ErrInvalidSampleRate
	}

	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize <= 0 {
		bufSize = defaultBufSize
	}

	mono := NewMonoMixer(src)
	buf := make([]float32, bufSize)
	pcm16 := make([]int16, 0, rate)

	empty := 0
	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Track{}, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return Track{}, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}

	return Track{
		Samples:    pcm16,
		SampleRate: rate,
		Duration:   float64(len(pcm16)) / float64(rate),
	}, nil
}
