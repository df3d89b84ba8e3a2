// SPDX-License-Identifier: EPL-2.0

// Package audpeaks decodes audio files into mono 16-bit PCM for waveform
// peak extraction.
//
// # Supported Formats
//
// NewRegistry registers a decoder for every supported file extension:
//   - WAV (PCM 16, 24 and 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis (.ogg, .oga) via formats/vorbis
//   - AIFF (.aiff, .aif) via formats/aiff
//   - FLAC via formats/flac
//
// # Quick Start
//
//	dec := audpeaks.NewFileDecoder(audpeaks.NewRegistry(), 4096)
//	track, err := dec.DecodeFile("static/audio/intro.mp3")
//	if err != nil {
//	    return err
//	}
//	values, err := peaks.Reduce(track.Samples, peaks.DefaultCount)
//
// track.Samples is single channel int16 at the file's own sample rate, and
// track.Duration is its length in seconds.
//
// # Batches
//
// The batch package runs a FileDecoder over every audio file of a directory
// and writes one peak file per input; cmd/genpeaks is its command line front
// end.
//
// See the individual subpackages for more detailed documentation.
package audpeaks
