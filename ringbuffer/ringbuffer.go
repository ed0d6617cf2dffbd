// SPDX-License-Identifier: EPL-2.0

package ringbuffer

import "fmt"

// RingBuffer is a fixed capacity circular buffer with independent read and
// write cursors. Both cursors are kept in [0, Cap()).
//
// A RingBuffer is not safe for concurrent use.
type RingBuffer[T any] struct {
	buf        []T
	readIndex  int
	writeIndex int

	// count is the explicit occupancy used by TryPush/TryPop.
	// Len keeps the modular formula and ignores it.
	count int
}

// New allocates a buffer of length slots, all set to the zero value of T.
func New[T any](length int) (*RingBuffer[T], error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, length)
	}

	return &RingBuffer[T]{
		buf: make([]T, length),
	}, nil
}

// MustNew is like New but panics when length is below 1.
func MustNew[T any](length int) *RingBuffer[T] {
	rb, err := New[T](length)
	if err != nil {
		panic(err)
	}
	return rb
}

// wrap maps any integer onto [0, len(buf)).
func (r *RingBuffer[T]) wrap(i int) int {
	n := len(r.buf)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Push writes value at the write cursor and advances it.
// Unread data is overwritten silently once the buffer wraps.
func (r *RingBuffer[T]) Push(value T) {
	r.buf[r.writeIndex] = value
	r.writeIndex = r.wrap(r.writeIndex + 1)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Pop returns the value at the read cursor and advances it.
// Popping a logically empty buffer returns whatever the slot holds.
func (r *RingBuffer[T]) Pop() T {
	value := r.buf[r.readIndex]
	r.readIndex = r.wrap(r.readIndex + 1)
	if r.count > 0 {
		r.count--
	}
	return value
}

// TryPush is the checked variant of Push.
func (r *RingBuffer[T]) TryPush(value T) error {
	if r.count == len(r.buf) {
		return ErrOverflow
	}
	r.Push(value)
	return nil
}

// TryPop is the checked variant of Pop.
func (r *RingBuffer[T]) TryPop() (T, error) {
	if r.count == 0 {
		var zero T
		return zero, ErrUnderflow
	}
	return r.Pop(), nil
}

// Put writes value at the write cursor without moving any cursor.
func (r *RingBuffer[T]) Put(value T) {
	r.buf[r.writeIndex] = value
}

// Peek returns the value at the read cursor without moving it.
func (r *RingBuffer[T]) Peek() T {
	return r.buf[r.readIndex]
}

// Get returns the value offset slots after the read cursor. The offset wraps
// modulo Cap(); a negative offset looks behind the read cursor.
func (r *RingBuffer[T]) Get(offset int) T {
	return r.buf[r.wrap(r.readIndex+r.wrap(offset))]
}

func (r *RingBuffer[T]) ReadIndex() int  { return r.readIndex }
func (r *RingBuffer[T]) WriteIndex() int { return r.writeIndex }

// SetReadIndex moves the read cursor to i modulo Cap().
func (r *RingBuffer[T]) SetReadIndex(i int) {
	r.readIndex = r.wrap(i)
	r.count = r.Len()
}

// SetWriteIndex moves the write cursor to i modulo Cap().
func (r *RingBuffer[T]) SetWriteIndex(i int) {
	r.writeIndex = r.wrap(i)
	r.count = r.Len()
}

// Reset zeroes every slot and puts both cursors back at 0.
func (r *RingBuffer[T]) Reset() {
	clear(r.buf)
	r.readIndex = 0
	r.writeIndex = 0
	r.count = 0
}

// Len is the distance from the read cursor to the write cursor.
// A buffer filled to capacity reports 0, same as an empty one; use Count
// when the two must be told apart.
func (r *RingBuffer[T]) Len() int {
	n := len(r.buf)
	return (r.writeIndex - r.readIndex + n) % n
}

// Count is the number of pushed and not yet popped values, in [0, Cap()].
func (r *RingBuffer[T]) Count() int { return r.count }

func (r *RingBuffer[T]) Cap() int    { return len(r.buf) }
func (r *RingBuffer[T]) Full() bool  { return r.count == len(r.buf) }
func (r *RingBuffer[T]) Empty() bool { return r.count == 0 }
