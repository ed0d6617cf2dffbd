// SPDX-License-Identifier: EPL-2.0

package txt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Writer prints interleaved frames as text rows. Each channel value is
// written in the shortest decimal form that round-trips through float32,
// followed by a single space; every row ends with a newline.
type Writer struct {
	w        *bufio.Writer
	channels int
	frames   int
	scratch  []byte
}

// NewWriter buffers output to w. Call Flush when done.
func NewWriter(w io.Writer, channels int) (*Writer, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}

	return &Writer{
		w:        bufio.NewWriter(w),
		channels: channels,
		scratch:  make([]byte, 0, 32),
	}, nil
}

// WriteFrames writes one row per frame of interleaved and returns the number
// of frames written.
func (tw *Writer) WriteFrames(interleaved []float32) (int, error) {
	if len(interleaved)%tw.channels != 0 {
		return 0, fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(interleaved), tw.channels)
	}

	frames := 0
	for i := 0; i < len(interleaved); i += tw.channels {
		for _, v := range interleaved[i : i+tw.channels] {
			tw.scratch = strconv.AppendFloat(tw.scratch[:0], float64(v), 'f', -1, 32)
			tw.scratch = append(tw.scratch, ' ')
			if _, err := tw.w.Write(tw.scratch); err != nil {
				return frames, fmt.Errorf("txt: writing row %d: %w", tw.frames, err)
			}
		}
		if err := tw.w.WriteByte('\n'); err != nil {
			return frames, fmt.Errorf("txt: writing row %d: %w", tw.frames, err)
		}

		frames++
		tw.frames++
	}

	return frames, nil
}

// Flush writes any buffered rows to the underlying writer.
func (tw *Writer) Flush() error {
	if err := tw.w.Flush(); err != nil {
		return fmt.Errorf("txt: flushing: %w", err)
	}
	return nil
}

// Frames is the total number of rows written so far.
func (tw *Writer) Frames() int { return tw.frames }

func (tw *Writer) Channels() int { return tw.channels }
