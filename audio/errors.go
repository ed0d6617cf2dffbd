// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidChannels   = errors.New("channel count must be at least 1")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrUnknownFormat     = errors.New("no decoder registered for format")
	ErrPartialFrame      = errors.New("source returned a partial frame")

	// Comb filter parameters
	ErrInvalidDelay      = errors.New("delay must be at least one sample and within the maximum delay")
	ErrInvalidGain       = errors.New("gain must be within [-1, 1]")
	ErrUnknownFilterKind = errors.New("unknown comb filter kind")
)
