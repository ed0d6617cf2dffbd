// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files through github.com/go-audio/wav.
//
// The Decoder accepts integer PCM at 16, 24 or 32 bits with any channel count
// and sample rate. Samples come out interleaved as float32, divided by the
// full scale of the stream's bit depth (2^(bits-1)), so a 16-bit sample v
// becomes v/32768. The returned source also reports its bit depth through
// audio.BitDepther.
//
//	f, _ := os.Open("in.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// Readers that cannot seek are read into memory first.
//
// WritePCM16 writes interleaved int16 samples as a 16-bit PCM file. The
// header sizes are patched on completion, so the destination must be an
// io.WriteSeeker such as *os.File.
//
// Non-PCM files (float, A-law, extensible) return ErrUnsupportedFormat and
// 8-bit files return ErrUnsupportedBitDepth.
package wav
