// SPDX-License-Identifier: EPL-2.0

package audpeaks

import (
	"errors"
	"fmt"
	"os"

	"github.com/ik5/audpeaks/audio"
	"github.com/ik5/audpeaks/formats/aiff"
	"github.com/ik5/audpeaks/formats/flac"
	"github.com/ik5/audpeaks/formats/mp3"
	"github.com/ik5/audpeaks/formats/vorbis"
	"github.com/ik5/audpeaks/formats/wav"
)

// DefaultBufSize is the number of mono samples read per call when decoding.
const DefaultBufSize = 4096

// NewRegistry returns a registry with a decoder for every supported file
// extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// FileDecoder decodes audio files picked by extension from a Registry.
// It is safe for concurrent use.
type FileDecoder struct {
	reg     *audio.Registry
	bufSize int
}

// NewFileDecoder returns a FileDecoder reading bufSize mono samples per
// call. A non-positive bufSize uses DefaultBufSize.
func NewFileDecoder(reg *audio.Registry, bufSize int) *FileDecoder {
	if bufSize <= 0 {
		bufSize = DefaultBufSize
	}

	return &FileDecoder{reg: reg, bufSize: bufSize}
}

// DecodeFile decodes the whole file at path into a mono 16-bit Track.
//
// An extension without a registered decoder returns an error wrapping
// audio.ErrUnsupportedFormat. A well-formed file without audio returns an
// empty Track and a nil error.
func (d *FileDecoder) DecodeFile(path string) (track audio.Track, err error) {
	dec, err := d.reg.ForPath(path)
	if err != nil {
		return audio.Track{}, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Track{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Track{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	track, err = DecodeMono16(src, d.bufSize)
	if err != nil {
		return audio.Track{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	return track, nil
}

// DecodeMono16 drains src into a mono 16-bit Track and closes it.
func DecodeMono16(src audio.Source, bufSize int) (audio.Track, error) {
	track, err := audio.ReadMono16(src, bufSize)
	if cerr := src.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("closing source: %w", cerr))
	}
	if err != nil {
		return audio.Track{}, err
	}

	return track, nil
}
