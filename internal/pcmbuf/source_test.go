// SPDX-License-Identifier: EPL-2.0

package pcmbuf

import (
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockReader simulates go-audio's PCMBuffer: it fills as much of buf as it
// can and returns (0, nil) once drained, with an optional short first read.
type mockReader struct {
	samples   []int
	offset    int
	shortRead int
	err       error
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	want := len(buf.Data)
	if m.shortRead > 0 {
		want = min(want, m.shortRead)
		m.shortRead = 0
	}

	n := copy(buf.Data[:want], m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func readAll(t *testing.T, src *Source, bufSize int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufSize)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestSource_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		samples  []int
		want     []float32
	}{
		{
			name:     "16-bit",
			bitDepth: 16,
			samples:  []int{0, 16384, -32768, 32767},
			want:     []float32{0, 0.5, -1, 32767.0 / 32768.0},
		},
		{
			name:     "24-bit",
			bitDepth: 24,
			samples:  []int{0, 4194304, -8388608},
			want:     []float32{0, 0.5, -1},
		},
		{
			name:     "32-bit",
			bitDepth: 32,
			samples:  []int{0, -2147483648, 1073741824},
			want:     []float32{0, -1, 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}
			src := NewSource(&mockReader{samples: tt.samples}, format, tt.bitDepth)

			got := readAll(t, src, 2)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d samples, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if math.Abs(float64(got[i]-tt.want[i])) > 1e-7 {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSource_ShortReadIsNotEOF(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{NumChannels: 2, SampleRate: 44100}
	r := &mockReader{samples: make([]int, 100), shortRead: 10}
	src := NewSource(r, format, 16)

	n, err := src.ReadSamples(make([]float32, 64))
	if err != nil {
		t.Fatalf("first ReadSamples() error = %v, want nil", err)
	}
	if n != 10 {
		t.Fatalf("first ReadSamples() n = %d, want 10", n)
	}

	if rest := readAll(t, src, 64); len(rest) != 90 {
		t.Errorf("remaining samples = %d, want 90", len(rest))
	}
}

func TestSource_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad chunk")
	format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}
	src := NewSource(&mockReader{err: boom}, format, 16)

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{NumChannels: 2, SampleRate: 48000}
	src := NewSource(&mockReader{}, format, 16)

	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Errorf("SampleRate/Channels = %d/%d, want 48000/2", src.SampleRate(), src.Channels())
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive", src.BufSize())
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}
