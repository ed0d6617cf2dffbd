// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer averages the channels of every frame into one sample.
type MonoMixer struct {
	src      Source
	channels int
	tmp      []float32
}

func NewMonoMixer(src Source) (*MonoMixer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}

	return &MonoMixer{src: src, channels: channels}, nil
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("mono mixer: closing source: %w", err)
	}
	return nil
}

// ReadSamples reads up to len(dst) frames from the source and writes their
// averages to dst.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * m.channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / m.channels
	scale := 1 / float32(m.channels)

	for f := range frames {
		var sum float32
		for _, v := range m.tmp[f*m.channels : (f+1)*m.channels] {
			sum += v
		}
		dst[f] = sum * scale
	}

	return frames, err
}
