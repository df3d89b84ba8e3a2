// SPDX-License-Identifier: EPL-2.0

// Package audio holds the decoding primitives shared by every format.
//
// Each format package turns an encoded stream into a Source: interleaved
// float32 samples in [-1.0, 1.0] plus the sample rate and channel count
// needed to interpret them. Sources end with io.EOF, possibly returned
// together with the last samples; any other error is a decode failure.
//
// # Downmixing to 16-bit mono
//
// MonoMixer averages the channels of every frame, carrying partial frames
// between reads. ReadMono16 drains a Source through it:
//
//	track, err := audio.ReadMono16(src, 4096)
//	// track.Samples is []int16, track.Duration is in seconds
//
// # Picking a decoder
//
// A Registry maps file extensions to Decoders. Keys ignore case and an
// optional leading dot, so ForPath("Intro.WAV") finds the "wav" decoder.
package audio
