// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audring/ringbuffer"
	"github.com/ik5/audring/utils"
)

// taps is the width of the cubic interpolation window.
const taps = 4

// Resampler streams from src to a target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// Interpolation window, one ring per channel. Get(0..3) is t-1, t0, t+1, t+2.
	window []*ringbuffer.RingBuffer[float32]
	// valid marks which window slots hold real source frames rather than
	// edge padding.
	valid *ringbuffer.RingBuffer[bool]

	// Position between t0 and t+1, in source frames
	pos float64

	// Source samples are read in blocks and consumed a frame at a time.
	block    []float32
	blockPos int
	blockLen int

	srcBuf  []float32
	primed  bool
	srcDone bool
	eof     bool

	// One-pole low-pass state, used when downsampling
	filterState []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("resampler: %w: got %d", ErrInvalidChannels, channels)
	}
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("resampler: %w: %d Hz -> %d Hz", ErrInvalidSampleRate, src.SampleRate(), dstRate)
	}

	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		window:      make([]*ringbuffer.RingBuffer[float32], channels),
		valid:       ringbuffer.MustNew[bool](taps),
		block:       make([]float32, blockSize(src, channels)),
		srcBuf:      make([]float32, channels),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for c := range r.window {
		r.window[c] = ringbuffer.MustNew[float32](taps)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: closing source: %w", err)
	}
	return nil
}

// shift drops the oldest window slot and appends a new one. When ok is false
// the newest real frame is repeated so the tail holds its last value.
func (r *Resampler) shift(frame []float32, ok bool) {
	for c, line := range r.window {
		v := line.Get(taps - 1)
		if ok {
			v = frame[c]
		}
		line.Pop()
		line.Push(v)
	}
	r.valid.Pop()
	r.valid.Push(ok)
}

// blockSize is src.BufSize rounded down to whole frames, at least one frame.
func blockSize(src Source, channels int) int {
	size := src.BufSize()
	size -= size % channels
	return max(size, channels)
}

// readFrame copies the next raw frame of src into r.srcBuf. It reports false
// once the source is exhausted.
func (r *Resampler) readFrame() (bool, error) {
	for r.blockPos+r.channels > r.blockLen {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.block)
		r.blockPos, r.blockLen = 0, n-n%r.channels

		switch {
		case err == io.EOF, err == nil && n == 0:
			r.srcDone = true
		case err != nil:
			return false, fmt.Errorf("resampler: reading source: %w", err)
		}
	}

	copy(r.srcBuf, r.block[r.blockPos:r.blockPos+r.channels])
	r.blockPos += r.channels

	return true, nil
}

func (r *Resampler) advance() error {
	ok, err := r.readFrame()
	if err != nil {
		return err
	}

	if ok && r.useFilter {
		for c := range r.channels {
			// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
			r.srcBuf[c] = r.filterAlpha*r.srcBuf[c] + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = r.srcBuf[c]
		}
	}

	r.shift(r.srcBuf, ok)
	return nil
}

// prime fills the window with the first frame as t-1 and t0 followed by the
// next two frames.
func (r *Resampler) prime() error {
	ok, err := r.readFrame()
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	if r.useFilter {
		// Start the filter from the first sample instead of silence.
		copy(r.filterState, r.srcBuf)
	}

	for c, line := range r.window {
		for range taps {
			line.Pop()
			line.Push(r.srcBuf[c])
		}
	}
	for i := range taps {
		r.valid.Pop()
		r.valid.Push(i == taps-1)
	}

	for range 2 {
		if err := r.advance(); err != nil {
			return err
		}
	}

	r.primed = true
	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.eof {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if err == io.EOF {
				r.eof = true
			}
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// t0 ran past the last source frame
		if !r.valid.Get(1) {
			r.eof = true
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c, line := range r.window {
			dst[written*r.channels+c] = utils.CubicInterpolateRing(line, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
