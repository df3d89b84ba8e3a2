// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//
// The library already produces interleaved float32 samples, so the Source
// passes them through untouched. Vorbis can overshoot [-1.0, 1.0] slightly on
// loud material; audio.ReadMono16 clamps when converting to 16-bit.
package vorbis
