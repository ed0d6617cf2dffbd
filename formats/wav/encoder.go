// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// chunkSize is the number of samples handed to the encoder per write.
const chunkSize = 8192

// WritePCM16 writes interleaved 16-bit PCM samples as a WAV file. The RIFF
// and data sizes are patched in on completion, which is why w must seek.
func WritePCM16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}
	if sampleRate < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, sampleRate)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(samples), channels)
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, channels, pcmFormat)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, 0, min(len(samples), chunkSize)),
		SourceBitDepth: 16,
	}

	// Always write once so the headers exist even for an empty file.
	for i := 0; i == 0 || i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))

		buf.Data = buf.Data[:0]
		for _, s := range samples[i:end] {
			buf.Data = append(buf.Data, int(s))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("wav: writing samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalizing header: %w", err)
	}

	return nil
}
