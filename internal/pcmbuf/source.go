// SPDX-License-Identifier: EPL-2.0

// Package pcmbuf adapts go-audio style decoders, which hand out integer PCM
// through an *audio.IntBuffer, to the float32 audio.Source model.
package pcmbuf

import (
	"errors"
	"io"

	goaudio "github.com/go-audio/audio"
)

const defaultBufSize = 4096

// Reader is the part of go-audio's wav and aiff decoders the Source needs.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM from a Reader and normalizes it to [-1,1] by
// dividing by 2^(bitDepth-1).
type Source struct {
	r          Reader
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps r. bitDepth must be the bit depth of the samples r produces.
func NewSource(r Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		r:          r,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      1 / float32(int64(1)<<(bitDepth-1)),
		intBuf: &goaudio.IntBuffer{
			Data:           make([]int, defaultBufSize),
			Format:         format,
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int    { return cap(s.intBuf.Data) }

// ReadSamples returns io.EOF only once the decoder stops producing samples;
// a short read is not treated as the end of the stream.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < len(dst) {
		s.intBuf.Data = make([]int, len(dst))
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.r.PCMBuffer(s.intBuf)
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
		return n, io.EOF
	}

	return n, err
}
