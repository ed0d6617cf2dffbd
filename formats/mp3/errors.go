// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File wraps the error go-mp3 reports when it cannot find a frame.
var ErrNotMP3File = errors.New("mp3: not an MP3 stream")
