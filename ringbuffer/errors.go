// SPDX-License-Identifier: EPL-2.0

package ringbuffer

import "errors"

var (
	// ErrInvalidCapacity is returned by New when the requested length is below 1.
	ErrInvalidCapacity = errors.New("ring buffer capacity must be at least 1")

	// ErrOverflow is returned by TryPush when every slot holds unread data.
	ErrOverflow = errors.New("ring buffer overflow")

	// ErrUnderflow is returned by TryPop when there is nothing left to read.
	ErrUnderflow = errors.New("ring buffer underflow")
)
