// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audpeaks/audio"
	"github.com/ik5/audpeaks/internal/pcmbuf"
)

const formatPCM = 1

type Decoder struct{}

// Decode parses the RIFF headers with go-audio/wav and returns a Source over
// the data chunk. Chunks other than "fmt " and "data" are skipped.
//
// go-audio needs to seek; readers that cannot are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	valid := dec.IsValidFile()

	// IsValidFile also rejects a well formed file with an empty data chunk;
	// that case is a valid zero-length stream.
	if dec.NumChans == 0 || dec.SampleRate == 0 || dec.BitDepth == 0 {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, ErrUnsupportedWavLayout
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	format := &goaudio.Format{
		NumChannels: int(dec.NumChans),
		SampleRate:  int(dec.SampleRate),
	}

	if !valid {
		return pcmbuf.NewSource(emptyReader{}, format, bitDepth), nil
	}

	return pcmbuf.NewSource(dec, format, bitDepth), nil
}

type emptyReader struct{}

func (emptyReader) PCMBuffer(*goaudio.IntBuffer) (int, error) { return 0, io.EOF }
