// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"strings"

	"github.com/ik5/audring/ringbuffer"
)

// FilterKind selects the comb filter topology.
type FilterKind int

const (
	// FIR feeds the delayed input forward: y[n] = x[n] + g*x[n-D].
	FIR FilterKind = iota + 1
	// IIR feeds the delayed output back: y[n] = x[n] + g*y[n-D].
	IIR
)

func (k FilterKind) String() string {
	switch k {
	case FIR:
		return "fir"
	case IIR:
		return "iir"
	default:
		return fmt.Sprintf("FilterKind(%d)", int(k))
	}
}

// ParseFilterKind accepts "fir" or "iir" in any case.
func ParseFilterKind(s string) (FilterKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fir":
		return FIR, nil
	case "iir":
		return IIR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFilterKind, s)
	}
}

// MaxDelaySamples bounds the length of one channel's delay line, a little
// over six minutes at 44.1 kHz.
const MaxDelaySamples = 1 << 24

// CombFilter applies a comb filter to every channel of src. Each channel owns
// a delay line whose read cursor trails the write cursor by the delay.
type CombFilter struct {
	src      Source
	kind     FilterKind
	gain     float32
	delay    int // samples
	maxDelay int // samples
	channels int

	lines []*ringbuffer.RingBuffer[float32]
}

// NewCombFilter builds a comb filter over src. delay and maxDelay are in
// seconds; a maxDelay shorter than delay is raised to delay. SetDelay may
// later move the delay anywhere up to maxDelay.
func NewCombFilter(src Source, kind FilterKind, gain float32, delay, maxDelay float64) (*CombFilter, error) {
	if kind != FIR && kind != IIR {
		return nil, fmt.Errorf("comb filter: %w: %v", ErrUnknownFilterKind, kind)
	}
	if err := checkGain(gain); err != nil {
		return nil, err
	}

	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("comb filter: %w: got %d", ErrInvalidChannels, channels)
	}
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("comb filter: %w: got %d", ErrInvalidSampleRate, src.SampleRate())
	}

	delaySamples := toSamples(delay, src.SampleRate())
	maxSamples := max(toSamples(maxDelay, src.SampleRate()), delaySamples)
	if delaySamples < 1 {
		return nil, fmt.Errorf("comb filter: %w: %vs is %d samples at %d Hz",
			ErrInvalidDelay, delay, delaySamples, src.SampleRate())
	}
	if maxSamples > MaxDelaySamples {
		return nil, fmt.Errorf("comb filter: %w: %vs is over %d samples at %d Hz",
			ErrInvalidDelay, max(delay, maxDelay), MaxDelaySamples, src.SampleRate())
	}

	f := &CombFilter{
		src:      src,
		kind:     kind,
		gain:     gain,
		delay:    delaySamples,
		maxDelay: maxSamples,
		channels: channels,
		lines:    make([]*ringbuffer.RingBuffer[float32], channels),
	}

	for c := range f.lines {
		line, err := ringbuffer.New[float32](maxSamples + 1)
		if err != nil {
			return nil, fmt.Errorf("comb filter: %w", err)
		}
		f.lines[c] = line
	}
	f.alignReaders()

	return f, nil
}

// toSamples truncates like int(rate * seconds). Anything longer than
// MaxDelaySamples comes back as MaxDelaySamples+1.
func toSamples(seconds float64, rate int) int {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}

	samples := float64(rate) * seconds
	if samples > MaxDelaySamples {
		return MaxDelaySamples + 1
	}
	return int(samples)
}

func checkGain(gain float32) error {
	if gain < -1 || gain > 1 || math.IsNaN(float64(gain)) {
		return fmt.Errorf("comb filter: %w: got %v", ErrInvalidGain, gain)
	}
	return nil
}

// alignReaders puts every read cursor f.delay slots behind its write cursor.
func (f *CombFilter) alignReaders() {
	for _, line := range f.lines {
		line.SetReadIndex(line.WriteIndex() - f.delay)
	}
}

func (f *CombFilter) SampleRate() int  { return f.src.SampleRate() }
func (f *CombFilter) Channels() int    { return f.channels }
func (f *CombFilter) BufSize() int     { return f.src.BufSize() }
func (f *CombFilter) Kind() FilterKind { return f.kind }
func (f *CombFilter) Gain() float32    { return f.gain }

// DelaySamples is the current delay in samples.
func (f *CombFilter) DelaySamples() int { return f.delay }

// Delay is the current delay in seconds.
func (f *CombFilter) Delay() float64 {
	return float64(f.delay) / float64(f.src.SampleRate())
}

func (f *CombFilter) SetGain(gain float32) error {
	if err := checkGain(gain); err != nil {
		return err
	}
	f.gain = gain
	return nil
}

// SetDelay changes the delay without clearing the lines; samples already in
// flight are read back at the new distance.
func (f *CombFilter) SetDelay(seconds float64) error {
	d := toSamples(seconds, f.src.SampleRate())
	if d < 1 || d > f.maxDelay {
		return fmt.Errorf("comb filter: %w: %d samples, max %d", ErrInvalidDelay, d, f.maxDelay)
	}

	f.delay = d
	f.alignReaders()
	return nil
}

// Reset silences every delay line.
func (f *CombFilter) Reset() {
	for _, line := range f.lines {
		line.Reset()
	}
	f.alignReaders()
}

func (f *CombFilter) Close() error {
	if err := f.src.Close(); err != nil {
		return fmt.Errorf("comb filter: closing source: %w", err)
	}
	return nil
}

// ReadSamples reads from src and filters the samples in place. src must
// return whole frames; a read ending mid-frame filters the whole frames and
// fails with ErrPartialFrame.
func (f *CombFilter) ReadSamples(dst []float32) (int, error) {
	if len(dst)%f.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	n, err := f.src.ReadSamples(dst)
	whole := n - n%f.channels
	f.Process(dst[:whole])

	if whole != n {
		return whole, fmt.Errorf("comb filter: %w: read %d samples of %d channels",
			ErrPartialFrame, n, f.channels)
	}

	return n, err
}

// Process filters interleaved samples in place. len(samples) must be a
// multiple of the channel count; a trailing partial frame is left untouched.
func (f *CombFilter) Process(samples []float32) {
	frames := len(samples) / f.channels

	for i := range frames {
		base := i * f.channels
		for c, line := range f.lines {
			x := samples[base+c]
			y := x + f.gain*line.Pop()

			if f.kind == FIR {
				line.Push(x)
			} else {
				line.Push(y)
			}

			samples[base+c] = y
		}
	}
}
