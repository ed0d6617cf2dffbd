// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds deterministic audio sources for tests.
// The sources satisfy audio.Source without importing it, so the audio
// package can use them from its own tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// MockSource generates frames from a waveform function.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // frames to generate
	generated    int // frames generated so far
	waveform     func(sample int, channel int) float32

	closed bool
	// CloseErr is returned by Close.
	CloseErr error
	// ErrAfter, when positive, makes ReadSamples fail with ErrMock once that
	// many frames have been produced.
	ErrAfter int
}

// ErrMock is returned by a MockSource configured with ErrAfter.
var ErrMock = errors.New("audiotest: mock read failure")

// NewMockSource creates a source that yields totalSamples frames.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewImpulseSource yields 1.0 on the first frame of every channel and
// silence afterwards.
func NewImpulseSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		if sample == 0 {
			return 1
		}
		return 0
	})
}

// NewSliceSource plays back interleaved samples. A trailing partial frame is
// dropped.
func NewSliceSource(sampleRate, channels int, interleaved []float32) *MockSource {
	data := append([]float32(nil), interleaved...)
	return NewMockSource(sampleRate, channels, len(data)/channels, func(sample int, channel int) float32 {
		return data[sample*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return m.CloseErr
}

// Closed reports whether Close has been called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.ErrAfter > 0 && m.generated >= m.ErrAfter {
		return 0, ErrMock
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.ErrAfter > 0 {
		framesToWrite = min(framesToWrite, m.ErrAfter-m.generated)
	}

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// SampleReader is the reading half of audio.Source.
type SampleReader interface {
	ReadSamples(dst []float32) (int, error)
}

// ReadAll drains r with a buffer of bufSize samples and returns everything it
// produced. io.EOF is not reported as an error.
func ReadAll(r SampleReader, bufSize int) ([]float32, error) {
	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := r.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
