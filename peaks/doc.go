// SPDX-License-Identifier: EPL-2.0

// Package peaks reduces a mono 16-bit sample stream to a fixed number of
// amplitude peaks and stores them in the JSON layout waveform renderers such
// as wavesurfer.js load directly:
//
//	{"data":[[0.1234,0.9,1,0, ...]]}
//
// The outer array has one entry per channel; peak files written here always
// carry a single, downmixed channel.
//
//	values, err := peaks.Reduce(track.Samples, peaks.DefaultCount)
//	err = peaks.WriteFile("peaks/intro.json", peaks.NewArtifact(values))
package peaks
