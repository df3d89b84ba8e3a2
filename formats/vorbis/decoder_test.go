// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
	panicMsg   string
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	frames := min(len(buf), len(m.samples)-m.offset) / m.channels
	n := copy(buf[:frames*m.channels], m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func newTestSource(channels int, samples []float32) *source {
	return &source{
		dec:        &mockOggVorbisReader{sampleRate: 8000, channels: channels, samples: samples},
		sampleRate: 8000,
		channels:   channels,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not Ogg Vorbis data")},
		{"empty", nil},
		{"ogg page without vorbis", append([]byte("OggS"), make([]byte, 40)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	testSamples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	src := newTestSource(2, testSamples)

	var got []float32
	// 5 is not a multiple of the channel count; only 4 values fit per read.
	dst := make([]float32, 5)
	for {
		n, err := src.ReadSamples(dst)
		if n%2 != 0 {
			t.Fatalf("ReadSamples() n = %d, want whole frames", n)
		}
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(testSamples) {
		t.Fatalf("read %d samples, want %d", len(got), len(testSamples))
	}
	for i := range testSamples {
		if got[i] != testSamples[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], testSamples[i])
		}
	}
}

func TestSource_ReadSamples_TooSmallBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(2, make([]float32, 100))

	for _, size := range []int{0, 1} {
		n, err := src.ReadSamples(make([]float32, size))
		if n != 0 || err != nil {
			t.Errorf("ReadSamples(len %d) = %d, %v; want 0, nil", size, n, err)
		}
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newTestSource(1, nil)
	src.dec.(*mockOggVorbisReader).err = io.ErrUnexpectedEOF

	_, err := src.ReadSamples(make([]float32, 8))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_ReadSamples_ParserPanic(t *testing.T) {
	t.Parallel()

	src := newTestSource(2, make([]float32, 16))
	src.dec.(*mockOggVorbisReader).panicMsg = "index out of range [255] with length 0"

	n, err := src.ReadSamples(make([]float32, 8))
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
	if !errors.Is(err, ErrMalformedStream) {
		t.Errorf("ReadSamples() error = %v, want ErrMalformedStream", err)
	}
}

func TestDecoder_CorruptPageDoesNotPanic(t *testing.T) {
	t.Parallel()

	// A capture pattern followed by a zeroed header and no segment table.
	data := append([]byte("OggS"), make([]byte, 40)...)

	src, err := (Decoder{}).Decode(bytes.NewReader(data))
	if err == nil {
		t.Fatal("Decode() error = nil, want error")
	}
	if src != nil {
		t.Errorf("Decode() source = %v, want nil on error", src)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(2, nil)

	if src.SampleRate() != 8000 || src.Channels() != 2 {
		t.Errorf("SampleRate/Channels = %d/%d, want 8000/2", src.SampleRate(), src.Channels())
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
