// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files with github.com/mewkiz/flac.
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//
// Frames are decoded one at a time and their subframes interleaved, so
// memory stays proportional to one FLAC block regardless of file length.
// Samples are normalized to [-1.0, 1.0] using the bit depth from STREAMINFO.
package flac
