// SPDX-License-Identifier: EPL-2.0

package txt

import "errors"

var (
	ErrInvalidChannels = errors.New("txt: channel count must be at least 1")
	ErrPartialFrame    = errors.New("txt: sample count is not a multiple of the channel count")
)
