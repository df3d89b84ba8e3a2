// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"os"
)

// WAV16 builds a canonical 44-byte header PCM 16-bit WAV file holding the
// given interleaved samples.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	blockAlign := channels * 2
	dataSize := len(samples) * 2

	buf := bytes.NewBuffer(make([]byte, 0, 44+dataSize))
	le := binary.LittleEndian

	buf.WriteString("RIFF")
	_ = binary.Write(buf, le, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, le, uint32(16))
	_ = binary.Write(buf, le, uint16(1)) // PCM
	_ = binary.Write(buf, le, uint16(channels))
	_ = binary.Write(buf, le, uint32(sampleRate))
	_ = binary.Write(buf, le, uint32(sampleRate*blockAlign))
	_ = binary.Write(buf, le, uint16(blockAlign))
	_ = binary.Write(buf, le, uint16(16))

	buf.WriteString("data")
	_ = binary.Write(buf, le, uint32(dataSize))
	_ = binary.Write(buf, le, samples)

	return buf.Bytes()
}

// WriteWAV16 writes WAV16 output to path.
func WriteWAV16(path string, sampleRate, channels int, samples []int16) error {
	return os.WriteFile(path, WAV16(sampleRate, channels, samples), 0o644)
}

// SquareWave16 returns a mono full-scale square wave of the given length.
func SquareWave16(totalSamples, halfPeriod int) []int16 {
	samples := make([]int16, totalSamples)
	for i := range samples {
		if (i/halfPeriod)%2 == 0 {
			samples[i] = 32767
		} else {
			samples[i] = -32768
		}
	}

	return samples
}
