// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbisFile wraps the error oggvorbis reports for the headers.
	ErrNotVorbisFile = errors.New("vorbis: not an Ogg Vorbis stream")

	ErrInvalidChannels = errors.New("vorbis: stream reports no channels")
)
