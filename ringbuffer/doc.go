// SPDX-License-Identifier: EPL-2.0

// Package ringbuffer provides a generic fixed capacity circular buffer that
// serves two access patterns over the same storage.
//
// # Streaming
//
// Push writes at the write cursor and advances it, Pop reads at the read
// cursor and advances it. Both cursors wrap independently:
//
//	rb, _ := ringbuffer.New[float32](3)
//	rb.Push(0.1)
//	rb.Push(0.2)
//	v := rb.Pop() // 0.1
//
// Neither call checks occupancy. Pushing past capacity overwrites unread
// data and popping an empty buffer returns stale values. TryPush and TryPop
// are the checked variants and report ErrOverflow and ErrUnderflow.
//
// # Delay line
//
// Put writes at the write cursor without moving it, Peek and Get read relative
// to the read cursor without moving it. Keeping the read cursor D slots behind
// the write cursor turns the buffer into a D sample delay:
//
//	line, _ := ringbuffer.New[float32](maxDelay + 1)
//	line.SetReadIndex(line.WriteIndex() - delay)
//	for i, x := range in {
//	    out[i] = x + gain*line.Pop()
//	    line.Push(x)
//	}
//
// # Occupancy
//
// Len is (write - read) mod Cap. When the cursors meet the buffer may be
// completely full or completely empty and Len reports 0 in both cases.
// Count keeps an explicit counter for callers that need to tell them apart.
//
// A RingBuffer never grows and never allocates after New. It holds no locks;
// callers sharing one between goroutines must synchronise access themselves.
package ringbuffer
