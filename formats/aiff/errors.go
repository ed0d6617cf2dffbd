// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile           = errors.New("aiff: not an AIFF file")
	ErrUnsupportedBitDepth   = errors.New("aiff: only 16-bit PCM is supported")
	ErrUnsupportedAiffLayout = errors.New("aiff: unsupported channel layout or sample rate")
)
