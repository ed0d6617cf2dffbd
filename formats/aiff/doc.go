// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files through github.com/go-audio/aiff.
//
// Samples come out interleaved as float32 divided by 32768. Other bit depths
// return ErrUnsupportedBitDepth; compressed AIFF-C is not handled.
package aiff
