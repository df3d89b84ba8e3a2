// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files through
// github.com/go-audio/aiff.
//
// Integer PCM at 16, 24 or 32 bits is supported, with any channel count and
// sample rate:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//
// Samples are normalized to float32 in [-1.0, 1.0] by dividing by
// 2^(bitDepth-1). AIFF-C compressed variants are rejected.
package aiff
