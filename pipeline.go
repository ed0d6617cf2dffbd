// SPDX-License-Identifier: EPL-2.0

package audring

import (
	"fmt"
	"io"

	"github.com/ik5/audring/audio"
	"github.com/ik5/audring/formats/txt"
	"github.com/ik5/audring/formats/wav"
	"github.com/ik5/audring/utils"
)

// DefaultDumpSeconds is how much audio DumpText callers print by default.
const DefaultDumpSeconds = 3

// frameBuffer returns a read buffer of whole frames, falling back to the
// source's own buffer size when size is not positive.
func frameBuffer(src audio.Source, size int) []float32 {
	channels := src.Channels()
	if size <= 0 {
		size = src.BufSize()
	}
	size -= size % channels

	return make([]float32, max(size, channels))
}

// DumpText writes up to maxFrames frames of src to w as text rows, one frame
// per line. maxFrames <= 0 dumps the whole stream. It returns the number of
// rows written.
func DumpText(w io.Writer, src audio.Source, maxFrames, bufferSize int) (int, error) {
	channels := src.Channels()
	if channels < 1 {
		return 0, fmt.Errorf("%w: got %d", audio.ErrInvalidChannels, channels)
	}

	tw, err := txt.NewWriter(w, channels)
	if err != nil {
		return 0, err
	}

	buf := frameBuffer(src, bufferSize)

	for maxFrames <= 0 || tw.Frames() < maxFrames {
		want := len(buf)
		if maxFrames > 0 {
			want = min(want, (maxFrames-tw.Frames())*channels)
		}

		n, err := src.ReadSamples(buf[:want])
		if n > 0 {
			if _, werr := tw.WriteFrames(buf[:n-n%channels]); werr != nil {
				return tw.Frames(), werr
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return tw.Frames(), fmt.Errorf("dump: reading samples: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return tw.Frames(), err
	}

	return tw.Frames(), nil
}

// CombConfig selects the stages ProcessComb runs.
type CombConfig struct {
	Kind audio.FilterKind
	Gain float32
	// Delay and MaxDelay are in seconds. MaxDelay <= Delay means Delay.
	Delay    float64
	MaxDelay float64
	// TargetRate resamples the input first when positive and different from
	// the source rate.
	TargetRate int
	// Mono averages all channels before filtering.
	Mono bool
}

// DefaultCombConfig is a feed-forward echo a quarter second late at half
// gain.
func DefaultCombConfig() CombConfig {
	return CombConfig{
		Kind:  audio.FIR,
		Gain:  0.5,
		Delay: 0.25,
	}
}

// PCM16 is interleaved 16-bit audio held in memory.
type PCM16 struct {
	Samples    []int16
	SampleRate int
	Channels   int
}

func (p *PCM16) Frames() int {
	if p.Channels < 1 {
		return 0
	}
	return len(p.Samples) / p.Channels
}

// WriteWAV encodes p as a 16-bit PCM WAV file.
func (p *PCM16) WriteWAV(w io.WriteSeeker) error {
	return wav.WritePCM16(w, p.SampleRate, p.Channels, p.Samples)
}

// ProcessComb runs src through the optional mono downmix and resampler and
// then the comb filter, collecting the result as 16-bit PCM scaled by 32767.
// The output has exactly as many frames as the filter input. src is not
// closed.
func ProcessComb(src audio.Source, cfg CombConfig, bufferSize int) (*PCM16, error) {
	var stage audio.Source = src

	if cfg.Mono {
		mono, err := audio.NewMonoMixer(stage)
		if err != nil {
			return nil, err
		}
		stage = mono
	}

	if cfg.TargetRate > 0 && cfg.TargetRate != stage.SampleRate() {
		rs, err := audio.NewResampler(stage, cfg.TargetRate)
		if err != nil {
			return nil, err
		}
		stage = rs
	}

	comb, err := audio.NewCombFilter(stage, cfg.Kind, cfg.Gain, cfg.Delay, cfg.MaxDelay)
	if err != nil {
		return nil, err
	}

	out := &PCM16{
		SampleRate: comb.SampleRate(),
		Channels:   comb.Channels(),
	}
	buf := frameBuffer(comb, bufferSize)

	for {
		n, err := comb.ReadSamples(buf)
		for _, v := range buf[:n] {
			out.Samples = append(out.Samples, utils.Float32ToInt16(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("comb: reading samples: %w", err)
		}
	}

	return out, nil
}
