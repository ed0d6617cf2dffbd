// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM readers of the go-audio decoders to
// audio.Source.
package pcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audring/utils"
)

// DefaultBufSize is reported by BufSize before the first read.
const DefaultBufSize = 4096

// Reader is the part of the go-audio wav and aiff decoders a Source needs.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source turns integer samples from a Reader into interleaved float32
// divided by 2^(bitDepth-1).
type Source struct {
	name       string
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec. name prefixes read errors ("wav", "aiff").
func NewSource(name string, dec Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		name:       name,
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		scale:      utils.FullScale(bitDepth),
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return DefaultBufSize
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err == io.EOF {
		err = nil
	} else if err != nil {
		err = fmt.Errorf("%s: reading PCM: %w", s.name, err)
	}

	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	// A short read is the end of the sample data.
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}
