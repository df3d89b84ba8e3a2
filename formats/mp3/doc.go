// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//
// go-mp3 always produces 16-bit stereo, so the Source reports two channels
// even for mono files (both channels then carry the same signal). Use
// audio.NewMonoMixer or audio.ReadMono16 to get a single channel back.
//
// Reads are sample aligned: every call requests whole 16-bit samples from
// the decoder and a trailing odd byte at the end of the stream is dropped.
package mp3
