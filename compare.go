// SPDX-License-Identifier: EPL-2.0

package audring

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audring/audio"
	"github.com/ik5/audring/formats/txt"
)

// ChannelDiff summarises a-b over one channel.
type ChannelDiff struct {
	// Max is the largest absolute difference.
	Max float64
	// RMS is the root mean square of the difference.
	RMS float64
}

// Comparison is the result of Compare.
type Comparison struct {
	SampleRate int
	Channels   int
	Frames     int
	Diff       []ChannelDiff
}

// MaxDiff is the largest absolute difference over every channel.
func (c *Comparison) MaxDiff() float64 {
	var m float64
	for _, d := range c.Diff {
		m = max(m, d.Max)
	}
	return m
}

// Identical reports whether every sample matched exactly.
func (c *Comparison) Identical() bool { return c.MaxDiff() == 0 }

// Compare reads a and b to the end and measures their per-sample difference
// on every channel. Both must share sample rate, channel count and length,
// otherwise ErrRateMismatch or ErrShapeMismatch is returned. Neither source
// is closed.
func Compare(a, b audio.Source, bufferSize int) (*Comparison, error) {
	return compare(a, b, bufferSize, nil)
}

// CompareTo is Compare that also writes every frame of a-b to w as text rows,
// in the same layout DumpText uses.
func CompareTo(w io.Writer, a, b audio.Source, bufferSize int) (*Comparison, error) {
	channels := a.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: got %d", audio.ErrInvalidChannels, channels)
	}

	tw, err := txt.NewWriter(w, channels)
	if err != nil {
		return nil, err
	}

	cmp, err := compare(a, b, bufferSize, tw)
	if err != nil {
		return nil, err
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	return cmp, nil
}

func compare(a, b audio.Source, bufferSize int, tw *txt.Writer) (*Comparison, error) {
	if a.SampleRate() != b.SampleRate() {
		return nil, fmt.Errorf("%w: %d Hz and %d Hz", ErrRateMismatch, a.SampleRate(), b.SampleRate())
	}

	channels := a.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: got %d", audio.ErrInvalidChannels, channels)
	}
	if b.Channels() != channels {
		return nil, fmt.Errorf("%w: %d and %d channels", ErrShapeMismatch, channels, b.Channels())
	}

	bufA := frameBuffer(a, bufferSize)
	bufB := make([]float32, len(bufA))
	sumSquares := make([]float64, channels)

	cmp := &Comparison{
		SampleRate: a.SampleRate(),
		Channels:   channels,
		Diff:       make([]ChannelDiff, channels),
	}

	for {
		na, err := fill(a, bufA)
		if err != nil {
			return nil, fmt.Errorf("compare: reading first input: %w", err)
		}
		nb, err := fill(b, bufB)
		if err != nil {
			return nil, fmt.Errorf("compare: reading second input: %w", err)
		}

		n := min(na, nb)
		n -= n % channels

		for i := range n {
			d := float64(bufA[i]) - float64(bufB[i])
			c := i % channels

			cmp.Diff[c].Max = max(cmp.Diff[c].Max, math.Abs(d))
			sumSquares[c] += d * d
			bufA[i] = float32(d)
		}
		cmp.Frames += n / channels

		if tw != nil {
			if _, err := tw.WriteFrames(bufA[:n]); err != nil {
				return nil, err
			}
		}

		if na != nb || na%channels != 0 {
			return nil, fmt.Errorf("%w: inputs diverge in length after %d frames", ErrShapeMismatch, cmp.Frames)
		}
		if na < len(bufA) {
			break
		}
	}

	if cmp.Frames > 0 {
		for c, sum := range sumSquares {
			cmp.Diff[c].RMS = math.Sqrt(sum / float64(cmp.Frames))
		}
	}

	return cmp, nil
}

// fill reads from src until buf is full or the stream ends. A short count
// means src is exhausted.
func fill(src audio.Source, buf []float32) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := src.ReadSamples(buf[n:])
		n += m

		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if m == 0 {
			return n, nil
		}
	}
	return n, nil
}
