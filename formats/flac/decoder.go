// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audpeaks/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is the part of flac.Stream the source needs, to allow testing.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        frameParser
	sampleRate int
	channels   int
	scale      float32
	// pending holds interleaved samples of the current frame not yet handed out.
	pending []float32
}

func newSource(dec frameParser, sampleRate, channels, bitDepth int) *source {
	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      1 / float32(int64(1)<<(bitDepth-1)),
		pending:    make([]float32, 0, 4096*channels),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.pending) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if err := s.next(); err != nil {
				if err == io.EOF {
					return n, io.EOF
				}
				return n, err
			}
			continue
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	return n, nil
}

// next decodes one frame into pending, interleaving its subframes.
func (s *source) next() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("decoding flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	blockSize := int(f.BlockSize)
	for _, sub := range f.Subframes {
		blockSize = min(blockSize, len(sub.Samples))
	}

	s.pending = s.pending[:0]
	for i := range blockSize {
		for _, sub := range f.Subframes {
			s.pending = append(s.pending, float32(sub.Samples[i])*s.scale)
		}
	}

	return nil
}

type Decoder struct{}

// Decode reads the FLAC signature and STREAMINFO block; other metadata
// blocks are skipped.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("opening flac stream: %w", err)
	}

	bitDepth := int(stream.Info.BitsPerSample)
	if bitDepth < 4 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return newSource(stream, int(stream.Info.SampleRate), int(stream.Info.NChannels), bitDepth), nil
}
