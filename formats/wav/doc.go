// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files holding integer PCM.
//
// Parsing is done by github.com/go-audio/wav, so files with extra chunks
// (LIST, INFO, bext...) before or after the data chunk are handled. 16, 24
// and 32-bit samples are accepted and normalized to float32 in [-1.0, 1.0]:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//
// A header that parses but carries no sample data decodes to a Source that
// reports io.EOF on the first read.
package wav
