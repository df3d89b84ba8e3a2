// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer downmixes an interleaved multi-channel Source into one channel by
// averaging the channels of every frame.
type MonoMixer struct {
	src Source
	tmp []float32
	// carry holds the samples of a frame the source split across two reads.
	carry []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:   src,
		tmp:   make([]float32, 8192),
		carry: make([]float32, 0, 16),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing source: %w", err)
	}

	return nil
}

// ReadSamples writes at most len(dst) mono samples and returns how many were
// written. A trailing partial frame is kept until the next call.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	buf := m.tmp[:need]

	held := copy(buf, m.carry)
	m.carry = m.carry[:0]

	n, err := m.src.ReadSamples(buf[held:])
	total := held + n
	frames := total / channels
	if used := frames * channels; used < total {
		m.carry = append(m.carry, buf[used:total]...)
	}

	if channels == 2 {
		for f := range frames {
			dst[f] = (buf[2*f] + buf[2*f+1]) * 0.5
		}
		return frames, err
	}

	scale := 1 / float32(channels)
	for f := range frames {
		var sum float32
		for _, v := range buf[f*channels : (f+1)*channels] {
			sum += v
		}
		dst[f] = sum * scale
	}

	return frames, err
}
