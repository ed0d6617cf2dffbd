// SPDX-License-Identifier: EPL-2.0

package audring

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/audring/audio"
	"github.com/ik5/audring/formats/wav"
	"github.com/ik5/audring/internal/audiotest"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	want := []string{"aif", "aiff", "mp3", "ogg", "wav"}
	if got := r.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}

	for _, path := range []string{"a.wav", "B.MP3", "c.ogg", "d.aif", "e.AIFF"} {
		if _, err := r.Lookup(path); err != nil {
			t.Errorf("Lookup(%q) error = %v", path, err)
		}
	}

	if _, err := r.Lookup("song.flac"); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("Lookup(flac) error = %v, want %v", err, audio.ErrUnknownFormat)
	}
}

func TestDumpText(t *testing.T) {
	t.Parallel()

	stereo := []float32{0.5, -0.5, 0.25, 0, -1, 1}

	tests := []struct {
		name       string
		maxFrames  int
		bufferSize int
		want       string
		wantFrames int
	}{
		{name: "whole stream", maxFrames: 0, bufferSize: 64, want: "0.5 -0.5 \n0.25 0 \n-1 1 \n", wantFrames: 3},
		{name: "limited", maxFrames: 2, bufferSize: 64, want: "0.5 -0.5 \n0.25 0 \n", wantFrames: 2},
		{name: "limit past end", maxFrames: 10, bufferSize: 64, want: "0.5 -0.5 \n0.25 0 \n-1 1 \n", wantFrames: 3},
		{name: "odd buffer", maxFrames: 0, bufferSize: 3, want: "0.5 -0.5 \n0.25 0 \n-1 1 \n", wantFrames: 3},
		{name: "tiny buffer", maxFrames: 0, bufferSize: 1, want: "0.5 -0.5 \n0.25 0 \n-1 1 \n", wantFrames: 3},
		{name: "source buffer size", maxFrames: 1, bufferSize: 0, want: "0.5 -0.5 \n", wantFrames: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			src := audiotest.NewSliceSource(44100, 2, stereo)

			frames, err := DumpText(&out, src, tt.maxFrames, tt.bufferSize)
			if err != nil {
				t.Fatalf("DumpText() error = %v", err)
			}
			if frames != tt.wantFrames {
				t.Errorf("DumpText() = %d frames, want %d", frames, tt.wantFrames)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestDumpText_Seconds(t *testing.T) {
	t.Parallel()

	const rate = 100
	src := audiotest.NewSineSource(rate, 2, 10*rate, 5)

	var out bytes.Buffer
	frames, err := DumpText(&out, src, DefaultDumpSeconds*rate, 0)
	if err != nil {
		t.Fatalf("DumpText() error = %v", err)
	}

	if frames != DefaultDumpSeconds*rate {
		t.Errorf("DumpText() = %d frames, want %d", frames, DefaultDumpSeconds*rate)
	}
	if rows := strings.Count(out.String(), "\n"); rows != frames {
		t.Errorf("wrote %d rows, want %d", rows, frames)
	}
}

func TestDumpText_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no channels", func(t *testing.T) {
		t.Parallel()

		_, err := DumpText(new(bytes.Buffer), audiotest.NewSilentSource(8000, 0, 10), 0, 16)
		if !errors.Is(err, audio.ErrInvalidChannels) {
			t.Errorf("DumpText() error = %v, want %v", err, audio.ErrInvalidChannels)
		}
	})

	t.Run("source failure", func(t *testing.T) {
		t.Parallel()

		src := audiotest.NewConstantSource(8000, 1, 100, 0.5)
		src.ErrAfter = 10

		frames, err := DumpText(new(bytes.Buffer), src, 0, 4)
		if !errors.Is(err, audiotest.ErrMock) {
			t.Errorf("DumpText() error = %v, want %v", err, audiotest.ErrMock)
		}
		if frames != 10 {
			t.Errorf("DumpText() = %d frames before failing, want 10", frames)
		}
	})
}

// writeWAV stores samples as a 16-bit WAV file in a temp dir.
func writeWAV(t *testing.T, rate, channels int, samples []int16) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := wav.WritePCM16(f, rate, channels, samples); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestDumpText_FromWAV(t *testing.T) {
	t.Parallel()

	path := writeWAV(t, 8000, 2, []int16{16384, -16384, 0, 32767, -32768, 8192})

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec, err := DefaultRegistry().Lookup(path)
	if err != nil {
		t.Fatal(err)
	}
	src, err := dec.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var out bytes.Buffer
	if _, err := DumpText(&out, src, DefaultDumpSeconds*src.SampleRate(), 0); err != nil {
		t.Fatalf("DumpText() error = %v", err)
	}

	want := "0.5 -0.5 \n0 0.9999695 \n-1 0.25 \n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestDefaultCombConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultCombConfig()

	if cfg.Kind != audio.FIR || cfg.Gain != 0.5 || cfg.Delay != 0.25 {
		t.Errorf("DefaultCombConfig() = %+v", cfg)
	}
	if cfg.TargetRate != 0 || cfg.Mono {
		t.Errorf("DefaultCombConfig() enables optional stages: %+v", cfg)
	}
}

func TestProcessComb_ImpulseResponse(t *testing.T) {
	t.Parallel()

	const rate = 8000
	delay := int(rate * 0.25)

	tests := []struct {
		name   string
		kind   audio.FilterKind
		echoes []int16
	}{
		{name: "fir", kind: audio.FIR, echoes: []int16{32767, 16383, 0, 0}},
		{name: "iir", kind: audio.IIR, echoes: []int16{32767, 16383, 8191, 4095}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultCombConfig()
			cfg.Kind = tt.kind

			pcm, err := ProcessComb(audiotest.NewImpulseSource(rate, 1, rate), cfg, 1000)
			if err != nil {
				t.Fatalf("ProcessComb() error = %v", err)
			}

			if pcm.SampleRate != rate || pcm.Channels != 1 {
				t.Fatalf("got %d Hz, %d channels; want %d Hz, 1 channel", pcm.SampleRate, pcm.Channels, rate)
			}
			if pcm.Frames() != rate {
				t.Fatalf("Frames() = %d, want %d", pcm.Frames(), rate)
			}

			for k, want := range tt.echoes {
				if got := pcm.Samples[k*delay]; got != want {
					t.Errorf("sample %d = %d, want %d", k*delay, got, want)
				}
			}

			for i, v := range pcm.Samples {
				if i%delay != 0 && v != 0 {
					t.Fatalf("sample %d = %d between echoes, want 0", i, v)
				}
			}
		})
	}
}

func TestProcessComb_Stages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cfg          func(*CombConfig)
		wantRate     int
		wantChannels int
		wantFrames   int
	}{
		{name: "filter only", cfg: func(*CombConfig) {}, wantRate: 16000, wantChannels: 2, wantFrames: 16000},
		{name: "mono", cfg: func(c *CombConfig) { c.Mono = true }, wantRate: 16000, wantChannels: 1, wantFrames: 16000},
		{name: "resample", cfg: func(c *CombConfig) { c.TargetRate = 8000 }, wantRate: 8000, wantChannels: 2, wantFrames: 8000},
		{name: "same rate", cfg: func(c *CombConfig) { c.TargetRate = 16000 }, wantRate: 16000, wantChannels: 2, wantFrames: 16000},
		{
			name:         "mono and resample",
			cfg:          func(c *CombConfig) { c.Mono, c.TargetRate = true, 8000 },
			wantRate:     8000,
			wantChannels: 1,
			wantFrames:   8000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultCombConfig()
			tt.cfg(&cfg)

			src := audiotest.NewSineSource(16000, 2, 16000, 440)
			pcm, err := ProcessComb(src, cfg, 0)
			if err != nil {
				t.Fatalf("ProcessComb() error = %v", err)
			}

			if pcm.SampleRate != tt.wantRate {
				t.Errorf("SampleRate = %d, want %d", pcm.SampleRate, tt.wantRate)
			}
			if pcm.Channels != tt.wantChannels {
				t.Errorf("Channels = %d, want %d", pcm.Channels, tt.wantChannels)
			}
			if pcm.Frames() != tt.wantFrames {
				t.Errorf("Frames() = %d, want %d", pcm.Frames(), tt.wantFrames)
			}
			if src.Closed() {
				t.Error("ProcessComb closed the source")
			}
		})
	}
}

func TestProcessComb_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     func(*CombConfig)
		src     func() *audiotest.MockSource
		wantErr error
	}{
		{
			name:    "delay shorter than a sample",
			cfg:     func(c *CombConfig) { c.Delay = 0 },
			wantErr: audio.ErrInvalidDelay,
		},
		{
			name:    "gain too large",
			cfg:     func(c *CombConfig) { c.Gain = 1.5 },
			wantErr: audio.ErrInvalidGain,
		},
		{
			name:    "unknown kind",
			cfg:     func(c *CombConfig) { c.Kind = audio.FilterKind(42) },
			wantErr: audio.ErrUnknownFilterKind,
		},
		{
			name:    "invalid source rate",
			cfg:     func(c *CombConfig) { c.TargetRate = 8000 },
			src:     func() *audiotest.MockSource { return audiotest.NewSilentSource(0, 1, 10) },
			wantErr: audio.ErrInvalidSampleRate,
		},
		{
			name: "source failure",
			cfg:  func(*CombConfig) {},
			src: func() *audiotest.MockSource {
				s := audiotest.NewSilentSource(8000, 1, 8000)
				s.ErrAfter = 100
				return s
			},
			wantErr: audiotest.ErrMock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultCombConfig()
			tt.cfg(&cfg)

			src := audiotest.NewSilentSource(8000, 1, 8000)
			if tt.src != nil {
				src = tt.src()
			}

			_, err := ProcessComb(src, cfg, 256)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ProcessComb() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPCM16_WriteWAV(t *testing.T) {
	t.Parallel()

	pcm := &PCM16{Samples: []int16{16384, -16384, 0, 8192}, SampleRate: 22050, Channels: 2}

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := pcm.WriteWAV(f); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}
	f.Close()

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	src, err := wav.Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got, err := audiotest.ReadAll(src, 16)
	if err != nil {
		t.Fatal(err)
	}
	if want := []float32{0.5, -0.5, 0, 0.25}; !slices.Equal(got, want) {
		t.Errorf("decoded %v, want %v", got, want)
	}
}

func TestPCM16_Frames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pcm  PCM16
		want int
	}{
		{PCM16{Samples: make([]int16, 6), Channels: 2}, 3},
		{PCM16{Samples: make([]int16, 6), Channels: 3}, 2},
		{PCM16{Samples: make([]int16, 6)}, 0},
		{PCM16{Channels: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", len(tt.pcm.Samples), tt.pcm.Channels), func(t *testing.T) {
			if got := tt.pcm.Frames(); got != tt.want {
				t.Errorf("Frames() = %d, want %d", got, tt.want)
			}
		})
	}
}

func BenchmarkProcessComb(b *testing.B) {
	cfg := DefaultCombConfig()

	b.ReportAllocs()

	for range b.N {
		src := audiotest.NewSineSource(44100, 2, 44100, 440)
		if _, err := ProcessComb(src, cfg, 4096); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDumpText(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		src := audiotest.NewSineSource(44100, 2, 44100, 440)
		if _, err := DumpText(discard{}, src, 0, 4096); err != nil {
			b.Fatal(err)
		}
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
