// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("wav: not a WAV file")
	ErrUnsupportedFormat   = errors.New("wav: only integer PCM WAV is supported")
	ErrUnsupportedBitDepth = errors.New("wav: unsupported WAV bit depth")

	// Encoder input
	ErrInvalidChannels   = errors.New("wav: channel count must be at least 1")
	ErrInvalidSampleRate = errors.New("wav: sample rate must be positive")
	ErrPartialFrame      = errors.New("wav: sample count is not a multiple of the channel count")
)
